package zrender

import (
	"errors"
	"fmt"
)

// NormalState is the reserved name of the implicit baseline every node
// starts in. It cannot be used as a user-defined state key.
const NormalState = "normal"

// ErrStateNotFound is returned by UseState when the requested named state
// has not been defined on the node.
var ErrStateNotFound = errors.New("zrender: state not found")

// State overrides a subset of a node's properties while active. Nil fields
// leave the property at its underlying value; TextConfig extends the base
// label configuration field by field instead of replacing it.
type State struct {
	Position   *Vec2
	Rotation   *float64
	Scale      *Vec2
	Origin     *Vec2
	Ignore     *bool
	TextConfig *TextConfig
}

// normalSnapshot is the baseline captured from the live properties when a
// node leaves the normal state.
type normalSnapshot struct {
	position   Vec2
	rotation   float64
	scale      Vec2
	origin     Vec2
	ignore     bool
	textConfig *TextConfig
}

// HasState reports whether any named state is currently active.
func (n *Node) HasState() bool {
	return len(n.currentStates) > 0
}

// GetState returns the named state, or nil when it has not been defined.
func (n *Node) GetState(name string) *State {
	return n.states[name]
}

// EnsureState returns the named state, defining an empty one first when
// absent. The normal name is reserved.
func (n *Node) EnsureState(name string) *State {
	if name == NormalState {
		panic(`zrender: state name "normal" is reserved`)
	}
	if n.states == nil {
		n.states = make(map[string]*State)
	}
	s, ok := n.states[name]
	if !ok {
		s = &State{}
		n.states[name] = s
	}
	return s
}

// CurrentStates returns the active state names in application order.
func (n *Node) CurrentStates() []string {
	if len(n.currentStates) == 0 {
		return nil
	}
	out := make([]string, len(n.currentStates))
	copy(out, n.currentStates)
	return out
}

// ClearStates restores the node to its normal baseline.
func (n *Node) ClearStates() {
	_ = n.UseState(NormalState, false)
}

// UseState switches the node to the named state. With keepCurrentStates the
// state layers on top of the active stack; otherwise it replaces it. Using
// the normal name restores the baseline and empties the stack. A failed
// lookup returns ErrStateNotFound and leaves the node untouched.
func (n *Node) UseState(name string, keepCurrentStates bool) error {
	toNormal := name == NormalState
	if toNormal && !n.HasState() {
		return nil
	}

	var state *State
	if !toNormal {
		s, ok := n.states[name]
		if !ok {
			Logger().Warn("zrender: use of undefined state", "state", name, "node", n.Name)
			return fmt.Errorf("%w: %q", ErrStateNotFound, name)
		}
		state = s
	}

	// Re-applying the single active state, or layering the state that is
	// already on top, changes nothing. Replacing a multi-state stack with
	// one of its members still collapses the stack, so that case falls
	// through to a full apply.
	if last := len(n.currentStates); last > 0 && n.currentStates[last-1] == name &&
		(keepCurrentStates || last == 1) {
		return nil
	}

	// Entering states from normal captures the live values as the baseline
	// that later restores read from.
	if !n.HasState() {
		n.saveNormalState()
	}

	n.applyState(state, keepCurrentStates)

	// Labels carry their own state stacks. A state missing on the label is
	// logged by the nested call and does not fail the node's switch.
	if n.textContent != nil {
		_ = n.textContent.UseState(name, keepCurrentStates)
	}

	if toNormal {
		n.currentStates = nil
	} else if keepCurrentStates {
		n.currentStates = append(n.currentStates, name)
	} else {
		n.currentStates = []string{name}
	}
	n.MarkDirty()
	return nil
}

// UseStates applies a whole stack: the first name replaces the active
// states, each subsequent one layers on top. An empty list restores normal.
// Lookup failures are joined into the returned error; the remaining names
// still apply.
func (n *Node) UseStates(names []string) error {
	if len(names) == 0 {
		n.ClearStates()
		return nil
	}
	var errs []error
	for i, name := range names {
		if err := n.UseState(name, i > 0); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Node) saveNormalState() {
	snap := &normalSnapshot{
		position: n.Position,
		rotation: n.Rotation,
		scale:    n.Scale,
		origin:   n.Origin,
		ignore:   n.Ignore,
	}
	if n.TextConfig != nil {
		cfg := *n.TextConfig
		snap.textConfig = &cfg
	}
	n.normalState = snap
}

// applyState overlays one state's fields onto the live properties. A nil
// state restores the normal baseline wholesale. When keep is set, fields the
// state leaves undefined inherit whatever is already active instead of
// falling back to the baseline.
func (n *Node) applyState(s *State, keep bool) {
	normal := n.normalState
	if s == nil {
		if normal == nil {
			return
		}
		n.Position = normal.position
		n.Rotation = normal.rotation
		n.Scale = normal.scale
		n.Origin = normal.origin
		n.Ignore = normal.ignore
		if normal.textConfig != nil {
			cfg := *normal.textConfig
			n.TextConfig = &cfg
		} else {
			n.TextConfig = nil
		}
		return
	}

	if s.Position != nil {
		n.Position = *s.Position
	} else if !keep {
		n.Position = normal.position
	}
	if s.Rotation != nil {
		n.Rotation = *s.Rotation
	} else if !keep {
		n.Rotation = normal.rotation
	}
	if s.Scale != nil {
		n.Scale = *s.Scale
	} else if !keep {
		n.Scale = normal.scale
	}
	if s.Origin != nil {
		n.Origin = *s.Origin
	} else if !keep {
		n.Origin = normal.origin
	}
	if s.Ignore != nil {
		n.Ignore = *s.Ignore
	} else if !keep {
		n.Ignore = normal.ignore
	}

	base := n.TextConfig
	if !keep {
		base = normal.textConfig
	}
	switch {
	case s.TextConfig != nil:
		n.TextConfig = mergeTextConfig(base, s.TextConfig)
	case !keep:
		if normal.textConfig != nil {
			cfg := *normal.textConfig
			n.TextConfig = &cfg
		} else {
			n.TextConfig = nil
		}
	}
}
