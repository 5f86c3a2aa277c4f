package zrender

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// keyframe is a timestamped value on a track. Times are milliseconds from
// the animator's start, after its delay.
type keyframe struct {
	time  float64
	value any
}

// track interpolates one property key across its keyframes. Each scalar
// component of the active segment is backed by a gween tween; discrete
// values switch when their segment completes.
type track struct {
	key    PropKey
	kind   valueKind
	frames []keyframe

	seg      int // index of the active segment's start keyframe; -1 before entry
	tweens   [4]*gween.Tween
	fedTime  float64 // local time already fed to the active segment's tweens
	finished bool
}

// Animator runs one set of property tracks against a single target (a node,
// or its style or shape bag), advanced once per host tick. Create animators
// with Node.Animate or the AnimateTo/AnimateFrom helpers.
type Animator struct {
	target propTarget
	node   *Node
	host   Host
	loop   bool

	tracks       []*track
	clipDuration float64
	delay        float64
	easing       ease.TweenFunc

	elapsed float64
	started bool
	paused  bool
	stopped bool
	done    bool

	duringCbs []func()
	doneCbs   []func()
}

// When adds a keyframe per property at the given time (milliseconds from the
// animator's start). Values must match each key's type; mismatches are
// logged and skipped. Must be called before Start.
func (a *Animator) When(timeMs float64, props Props) *Animator {
	if a.started {
		panic("zrender: Animator.When called after Start")
	}
	for key, v := range props {
		kind := propKind(key)
		if kind != kindDiscrete {
			if _, ok := valueScalars(kind, v); !ok {
				warnPropMismatch(key, v)
				continue
			}
		}
		tr := a.trackFor(key, kind)
		tr.frames = append(tr.frames, keyframe{time: timeMs, value: v})
	}
	if timeMs > a.clipDuration {
		a.clipDuration = timeMs
	}
	return a
}

func (a *Animator) trackFor(key PropKey, kind valueKind) *track {
	for _, tr := range a.tracks {
		if tr.key == key {
			return tr
		}
	}
	tr := &track{key: key, kind: kind, seg: -1}
	a.tracks = append(a.tracks, tr)
	return tr
}

// Delay postpones the first frame by the given milliseconds.
func (a *Animator) Delay(ms float64) *Animator {
	a.delay = ms
	return a
}

// During registers a callback invoked after every tick that advanced the
// animation.
func (a *Animator) During(fn func()) *Animator {
	a.duringCbs = append(a.duringCbs, fn)
	return a
}

// Done registers a completion callback. It fires once when the animation
// finishes naturally; stopped animators never fire it.
func (a *Animator) Done(fn func()) *Animator {
	a.doneCbs = append(a.doneCbs, fn)
	return a
}

// Start begins playback. A nil easing means linear. Tracks whose keyframes
// all equal the live value are dropped unless force is set; if nothing
// remains and no explicit clip duration is pending, the animator completes
// synchronously.
func (a *Animator) Start(easing ease.TweenFunc, force bool) *Animator {
	if a.started || a.stopped || a.done {
		return a
	}
	if easing == nil {
		easing = ease.Linear
	}
	a.easing = easing
	a.started = true

	assigned := false
	kept := a.tracks[:0]
	for _, tr := range a.tracks {
		sortFrames(tr.frames)
		// Implicit first frame: playback starts from the live value, or from
		// the first keyframe's value when the target has none.
		if len(tr.frames) > 0 && tr.frames[0].time > 0 {
			first := keyframe{time: 0, value: tr.frames[0].value}
			if live, ok := a.target.getProp(tr.key); ok {
				first.value = live
			}
			tr.frames = append(tr.frames, keyframe{})
			copy(tr.frames[1:], tr.frames)
			tr.frames[0] = first
		}
		if len(tr.frames) < 2 {
			// A single frame at time zero is an assignment, not a tween.
			if len(tr.frames) == 1 {
				a.target.setProp(tr.key, tr.frames[0].value)
				assigned = true
			}
			continue
		}
		if !force && framesAllEqual(tr.frames) {
			continue
		}
		kept = append(kept, tr)
	}
	a.tracks = kept
	for _, tr := range a.tracks {
		if last := tr.frames[len(tr.frames)-1].time; last > a.clipDuration {
			a.clipDuration = last
		}
	}
	if assigned {
		a.target.owner().MarkDirty()
	}
	// With every track dropped and no forced clip to run out, there is
	// nothing to wait for: complete synchronously.
	if len(a.tracks) == 0 && !force {
		a.finish()
	}
	return a
}

// sortFrames orders keyframes by time. Stable insertion sort; tracks hold a
// handful of frames at most.
func sortFrames(frames []keyframe) {
	for i := 1; i < len(frames); i++ {
		f := frames[i]
		j := i - 1
		for j >= 0 && frames[j].time > f.time {
			frames[j+1] = frames[j]
			j--
		}
		frames[j+1] = f
	}
}

func framesAllEqual(frames []keyframe) bool {
	for i := 1; i < len(frames); i++ {
		if frames[i].value != frames[0].value {
			return false
		}
	}
	return true
}

// Update advances the animation by dtMs milliseconds and applies the
// interpolated values to the target. Returns true once the animator has
// finished or been stopped. The host scheduler calls this once per tick.
func (a *Animator) Update(dtMs float64) bool {
	if a.done || a.stopped {
		return true
	}
	if !a.started || a.paused {
		return false
	}
	a.elapsed += dtMs
	t := a.elapsed - a.delay
	if t < 0 {
		return false
	}

	finished := false
	for {
		allDone := true
		if len(a.tracks) > 0 {
			for _, tr := range a.tracks {
				if !tr.finished {
					a.advanceTrack(tr, t)
				}
				if !tr.finished {
					allDone = false
				}
			}
		} else if t < a.clipDuration {
			allDone = false
		}
		if !allDone {
			break
		}
		if !a.loop {
			finished = true
			break
		}
		if a.clipDuration <= 0 {
			break
		}
		// Wrap the clip clock and restart every track with the overflow.
		t -= a.clipDuration
		a.elapsed -= a.clipDuration
		for _, tr := range a.tracks {
			tr.finished = false
			tr.seg = -1
		}
	}

	a.target.owner().MarkDirty()
	for _, fn := range a.duringCbs {
		fn()
	}
	if finished {
		a.finish()
		return true
	}
	return false
}

func (a *Animator) advanceTrack(tr *track, t float64) {
	for !tr.finished {
		if tr.seg < 0 {
			a.enterSegment(tr, 0)
		}
		start := tr.frames[tr.seg]
		end := tr.frames[tr.seg+1]
		segDur := end.time - start.time

		if tr.kind == kindDiscrete || segDur <= 0 {
			// Discrete and zero-length segments switch at segment end.
			if t < end.time {
				return
			}
			a.target.setProp(tr.key, end.value)
			a.advancePastSegment(tr)
			continue
		}

		localT := min(t, end.time) - start.time
		if delta := localT - tr.fedTime; delta > 0 {
			var s [4]float64
			for i := 0; i < tr.kind.scalarCount(); i++ {
				v, _ := tr.tweens[i].Update(float32(delta))
				s[i] = float64(v)
			}
			tr.fedTime = localT
			a.target.setProp(tr.key, scalarsValue(tr.kind, s))
		}
		if t < end.time {
			return
		}
		// Land exactly on the keyframe value before moving on.
		a.target.setProp(tr.key, end.value)
		a.advancePastSegment(tr)
	}
}

func (a *Animator) advancePastSegment(tr *track) {
	if tr.seg+2 > len(tr.frames)-1 {
		tr.finished = true
		return
	}
	a.enterSegment(tr, tr.seg+1)
}

func (a *Animator) enterSegment(tr *track, seg int) {
	tr.seg = seg
	tr.fedTime = 0
	if tr.kind == kindDiscrete {
		return
	}
	begin, _ := valueScalars(tr.kind, tr.frames[seg].value)
	endv, _ := valueScalars(tr.kind, tr.frames[seg+1].value)
	dur := float32(tr.frames[seg+1].time - tr.frames[seg].time)
	for i := 0; i < tr.kind.scalarCount(); i++ {
		tr.tweens[i] = gween.New(float32(begin[i]), float32(endv[i]), dur, a.easing)
	}
}

// Stop halts the animation and removes it from its node and host scheduler.
// With jumpToEnd set, every unfinished track's final value is applied first.
// Completion callbacks do not fire for stopped animators.
func (a *Animator) Stop(jumpToEnd bool) {
	if a.done || a.stopped {
		return
	}
	a.stopped = true
	if jumpToEnd {
		applied := false
		for _, tr := range a.tracks {
			if !tr.finished && len(tr.frames) > 0 {
				a.target.setProp(tr.key, tr.frames[len(tr.frames)-1].value)
				applied = true
			}
		}
		if applied {
			a.target.owner().MarkDirty()
		}
	}
	a.detach()
}

// Pause suspends playback; the animator stays registered with the scheduler.
func (a *Animator) Pause() {
	a.paused = true
}

// Resume continues playback after Pause.
func (a *Animator) Resume() {
	a.paused = false
}

// Paused reports whether playback is suspended.
func (a *Animator) Paused() bool {
	return a.paused
}

// Finished reports whether the animation completed naturally.
func (a *Animator) Finished() bool {
	return a.done
}

func (a *Animator) finish() {
	a.done = true
	a.detach()
	for _, fn := range a.doneCbs {
		fn()
	}
}

// detach removes the animator from its node's list and, when live, from the
// host scheduler. Completion and stop both run through here so a finished
// animator never lingers in the host's registry.
func (a *Animator) detach() {
	if a.node != nil {
		a.node.removeAnimator(a)
	}
	if a.host != nil {
		a.host.RemoveAnimator(a)
		a.host = nil
	}
}
