package zrender

import "github.com/tanema/gween/ease"

// SubTarget selects which property surface of a node an animator drives.
type SubTarget uint8

const (
	TargetSelf SubTarget = iota
	TargetStyle
	TargetShape
)

func (s SubTarget) String() string {
	switch s {
	case TargetSelf:
		return "self"
	case TargetStyle:
		return "style"
	case TargetShape:
		return "shape"
	}
	return "invalid"
}

// Animate creates an animator on the given surface and registers it with the
// node, and with the node's host when attached. Configure it with When,
// Delay, During, and Done, then call Start.
func (n *Node) Animate(sub SubTarget, loop bool) *Animator {
	var target propTarget
	switch sub {
	case TargetStyle:
		n.ensureStyle()
		target = styleTarget{n}
	case TargetShape:
		n.ensureShape()
		target = shapeTarget{n}
	default:
		target = selfTarget{n}
	}
	a := &Animator{target: target, node: n, loop: loop}
	n.addAnimator(a)
	return a
}

func (n *Node) addAnimator(a *Animator) {
	n.animators = append(n.animators, a)
	if n.host != nil {
		a.host = n.host
		n.host.AddAnimator(a)
	}
}

func (n *Node) removeAnimator(a *Animator) {
	for i, other := range n.animators {
		if other == a {
			n.animators = append(n.animators[:i], n.animators[i+1:]...)
			return
		}
	}
}

// StopAnimation stops every animator registered on the node. With jumpToEnd
// set, each one applies its final keyframe values first. Stopped animators
// never fire their Done callbacks.
func (n *Node) StopAnimation(jumpToEnd bool) {
	running := make([]*Animator, len(n.animators))
	copy(running, n.animators)
	for _, a := range running {
		a.Stop(jumpToEnd)
	}
}

// animateConfig carries the options of one AnimateTo or AnimateFrom call.
type animateConfig struct {
	duration float64
	delay    float64
	easing   ease.TweenFunc
	done     func()
	force    bool
}

// AnimateOption adjusts a single AnimateTo or AnimateFrom call.
type AnimateOption func(*animateConfig)

// WithDuration sets the transition length in milliseconds. The default is
// 500.
func WithDuration(ms float64) AnimateOption {
	return func(c *animateConfig) { c.duration = ms }
}

// WithDelay postpones the transition's first frame by ms milliseconds.
func WithDelay(ms float64) AnimateOption {
	return func(c *animateConfig) { c.delay = ms }
}

// WithEasing sets the easing function applied to every tweened segment. The
// default is linear.
func WithEasing(fn ease.TweenFunc) AnimateOption {
	return func(c *animateConfig) { c.easing = fn }
}

// WithDone registers a callback fired once, after every property batch the
// call spawned has finished. When the call produces no animation at all the
// callback fires synchronously before the call returns.
func WithDone(fn func()) AnimateOption {
	return func(c *animateConfig) { c.done = fn }
}

// WithForce animates even properties whose descriptor values already match
// the live ones, and keeps an empty call running for its full duration so
// WithDone fires after the configured time instead of synchronously.
func WithForce() AnimateOption {
	return func(c *animateConfig) { c.force = true }
}

func buildAnimateConfig(opts []AnimateOption) animateConfig {
	cfg := animateConfig{duration: 500}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// AnimateTo transitions the node's live values toward the descriptor's.
// Top-level keys address the node itself; KeyStyle and KeyShape hold nested
// bags for their sub-objects, one level deep at most. Values that cannot
// interpolate are assigned immediately, values with no live counterpart are
// assigned directly, and values already equal to the live ones are skipped
// unless WithForce is set. Any animation already running on the node is
// stopped first.
func (n *Node) AnimateTo(props Props, opts ...AnimateOption) {
	n.animateMerge(props, buildAnimateConfig(opts), false)
}

// AnimateFrom writes the descriptor's values to the node and animates back
// to the values the node held before the call. Keys with no live counterpart
// are skipped.
func (n *Node) AnimateFrom(props Props, opts ...AnimateOption) {
	n.animateMerge(props, buildAnimateConfig(opts), true)
}

func (n *Node) animateMerge(props Props, cfg animateConfig, reverse bool) {
	// Reject bad nesting before any state is touched so a panicking call
	// leaves the node exactly as it was.
	for key, v := range props {
		switch key {
		case KeyStyle, KeyShape:
			if bag, ok := v.(Props); ok {
				for _, inner := range bag {
					if _, nested := inner.(Props); nested {
						panic("zrender: animate descriptor nests deeper than style/shape")
					}
				}
			}
		default:
			if _, nested := v.(Props); nested {
				panic("zrender: animate descriptor nests deeper than style/shape")
			}
		}
	}

	// A new descriptor supersedes whatever is in flight.
	n.StopAnimation(false)

	batches := [3]struct {
		sub   SubTarget
		props Props
	}{{sub: TargetSelf}, {sub: TargetStyle}, {sub: TargetShape}}

	mutated := false
	for key, v := range props {
		switch key {
		case KeyStyle:
			bag, ok := v.(Props)
			if !ok {
				warnPropMismatch(key, v)
				continue
			}
			for k, sv := range bag {
				if n.mergeKey(styleTarget{n}, k, sv, reverse, cfg.force, &batches[1].props) {
					mutated = true
				}
			}
		case KeyShape:
			bag, ok := v.(Props)
			if !ok {
				warnPropMismatch(key, v)
				continue
			}
			for k, sv := range bag {
				if n.mergeKey(shapeTarget{n}, k, sv, reverse, cfg.force, &batches[2].props) {
					mutated = true
				}
			}
		default:
			if n.mergeKey(selfTarget{n}, key, v, reverse, cfg.force, &batches[0].props) {
				mutated = true
			}
		}
	}

	var created []*Animator
	for i := range batches {
		b := &batches[i]
		if len(b.props) == 0 {
			continue
		}
		a := n.Animate(b.sub, false)
		a.Delay(cfg.delay)
		if reverse {
			// Swap ends: the descriptor becomes the live value and the
			// previous live values become the keyframe to reach.
			endProps := make(Props, len(b.props))
			for k, v := range b.props {
				live, _ := a.target.getProp(k)
				endProps[k] = live
				a.target.setProp(k, v)
				mutated = true
			}
			a.When(cfg.duration, endProps)
		} else {
			a.When(cfg.duration, b.props)
		}
		created = append(created, a)
	}

	if len(created) == 0 && cfg.force {
		// Nothing to tween, but the caller wants the full duration anyway:
		// run an empty clip so Done fires after delay+duration.
		a := n.Animate(TargetSelf, false)
		a.Delay(cfg.delay)
		a.clipDuration = cfg.duration
		created = append(created, a)
	}

	if mutated {
		n.MarkDirty()
	}

	if len(created) == 0 {
		if cfg.done != nil {
			cfg.done()
		}
		return
	}
	if cfg.done != nil {
		remaining := len(created)
		done := cfg.done
		for _, a := range created {
			a.Done(func() {
				remaining--
				if remaining == 0 {
					done()
				}
			})
		}
	}
	// Start only after every batch is built so a batch that completes
	// synchronously still sees the full countdown.
	for _, a := range created {
		a.Start(cfg.easing, cfg.force)
	}
}

// mergeKey routes one descriptor entry. Discrete values and values with no
// live counterpart are resolved immediately; everything else lands in the
// batch for its sub-target's animator. Reports whether it wrote to the
// target.
func (n *Node) mergeKey(target propTarget, key PropKey, v any, reverse, force bool, batch *Props) bool {
	kind := propKind(key)
	if kind == kindDiscrete {
		if reverse {
			return false
		}
		return target.setProp(key, v)
	}
	if _, ok := valueScalars(kind, v); !ok {
		warnPropMismatch(key, v)
		return false
	}
	live, ok := target.getProp(key)
	if !ok {
		if reverse {
			return false
		}
		return target.setProp(key, v)
	}
	if !force && live == v {
		return false
	}
	if *batch == nil {
		*batch = make(Props)
	}
	(*batch)[key] = v
	return false
}
