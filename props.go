package zrender

// PropKey identifies a settable node, style, or shape property. The set is
// closed: every animatable or state-overridable property appears here and is
// dispatched through a typed setter, never through reflection.
type PropKey uint8

const (
	// Node properties.
	KeyPosition PropKey = iota
	KeyRotation
	KeyScale
	KeyOrigin
	KeyIgnore
	KeySilent
	KeyDraggable
	KeyText
	KeyTextConfig
	KeyTextContent
	KeyClipPath
	KeyStyle
	KeyShape

	// Style properties (valid inside a KeyStyle bag).
	KeyOpacity
	KeyFill
	KeyStroke
	KeyLineWidth
	KeyShadowBlur
	KeyShadowOffsetX
	KeyShadowOffsetY
	KeyTextAlign
	KeyVerticalAlign

	// Shape properties (valid inside a KeyShape bag).
	KeyX
	KeyY
	KeyWidth
	KeyHeight
	KeyR
)

func (k PropKey) String() string {
	switch k {
	case KeyPosition:
		return "position"
	case KeyRotation:
		return "rotation"
	case KeyScale:
		return "scale"
	case KeyOrigin:
		return "origin"
	case KeyIgnore:
		return "ignore"
	case KeySilent:
		return "silent"
	case KeyDraggable:
		return "draggable"
	case KeyText:
		return "text"
	case KeyTextConfig:
		return "textConfig"
	case KeyTextContent:
		return "textContent"
	case KeyClipPath:
		return "clipPath"
	case KeyStyle:
		return "style"
	case KeyShape:
		return "shape"
	case KeyOpacity:
		return "opacity"
	case KeyFill:
		return "fill"
	case KeyStroke:
		return "stroke"
	case KeyLineWidth:
		return "lineWidth"
	case KeyShadowBlur:
		return "shadowBlur"
	case KeyShadowOffsetX:
		return "shadowOffsetX"
	case KeyShadowOffsetY:
		return "shadowOffsetY"
	case KeyTextAlign:
		return "textAlign"
	case KeyVerticalAlign:
		return "verticalAlign"
	case KeyX:
		return "x"
	case KeyY:
		return "y"
	case KeyWidth:
		return "width"
	case KeyHeight:
		return "height"
	case KeyR:
		return "r"
	}
	return "invalid"
}

// Props is a property bag for Attr, AnimateTo, and AnimateFrom. Values under
// KeyStyle and KeyShape hold nested Props bags; one level of nesting is the
// maximum.
type Props map[PropKey]any

// valueKind classifies how a property value interpolates.
type valueKind uint8

const (
	kindFloat    valueKind = iota // single scalar
	kindVec2                      // two scalars, componentwise
	kindColor                     // four scalars, componentwise
	kindDiscrete                  // not interpolatable; assigned, never tweened
)

func propKind(key PropKey) valueKind {
	switch key {
	case KeyRotation, KeyOpacity, KeyLineWidth, KeyShadowBlur,
		KeyShadowOffsetX, KeyShadowOffsetY, KeyX, KeyY, KeyWidth, KeyHeight, KeyR:
		return kindFloat
	case KeyPosition, KeyScale, KeyOrigin:
		return kindVec2
	case KeyFill, KeyStroke:
		return kindColor
	}
	return kindDiscrete
}

// scalarCount returns how many tweened scalars a kind carries.
func (k valueKind) scalarCount() int {
	switch k {
	case kindFloat:
		return 1
	case kindVec2:
		return 2
	case kindColor:
		return 4
	}
	return 0
}

// valueScalars splits an interpolatable value into scalar components.
// The bool reports whether the value matched the kind.
func valueScalars(kind valueKind, v any) ([4]float64, bool) {
	var s [4]float64
	switch kind {
	case kindFloat:
		f, ok := v.(float64)
		if !ok {
			return s, false
		}
		s[0] = f
	case kindVec2:
		p, ok := v.(Vec2)
		if !ok {
			return s, false
		}
		s[0], s[1] = p.X, p.Y
	case kindColor:
		c, ok := v.(Color)
		if !ok {
			return s, false
		}
		s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
	default:
		return s, false
	}
	return s, true
}

// scalarsValue rebuilds a property value from scalar components.
func scalarsValue(kind valueKind, s [4]float64) any {
	switch kind {
	case kindFloat:
		return s[0]
	case kindVec2:
		return Vec2{s[0], s[1]}
	case kindColor:
		return Color{s[0], s[1], s[2], s[3]}
	}
	return nil
}

// propTarget is the surface animators and the attr dispatcher write through:
// the node itself, its style bag, or its shape bag.
type propTarget interface {
	// getProp returns the live value for key. ok is false when the key does
	// not apply to this target or the value is unset (e.g. a nil fill).
	getProp(key PropKey) (v any, ok bool)
	// setProp assigns v to key. Returns false (and logs) on a type mismatch
	// or a key that does not apply to this target.
	setProp(key PropKey, v any) bool
	// owner returns the node whose redraw flag covers this target.
	owner() *Node
}

func warnPropMismatch(key PropKey, v any) {
	Logger().Warn("zrender: property value type mismatch", "key", key.String(), "value", v)
}

// --- Node as target ---

type selfTarget struct{ n *Node }

func (t selfTarget) owner() *Node { return t.n }

func (t selfTarget) getProp(key PropKey) (any, bool) {
	n := t.n
	switch key {
	case KeyPosition:
		return n.Position, true
	case KeyRotation:
		return n.Rotation, true
	case KeyScale:
		return n.Scale, true
	case KeyOrigin:
		return n.Origin, true
	case KeyIgnore:
		return n.Ignore, true
	case KeySilent:
		return n.Silent, true
	case KeyDraggable:
		return n.Draggable, true
	case KeyText:
		return n.Text, true
	}
	return nil, false
}

func (t selfTarget) setProp(key PropKey, v any) bool {
	n := t.n
	switch key {
	case KeyPosition:
		if p, ok := v.(Vec2); ok {
			n.Position = p
			return true
		}
	case KeyRotation:
		if f, ok := v.(float64); ok {
			n.Rotation = f
			return true
		}
	case KeyScale:
		if p, ok := v.(Vec2); ok {
			n.Scale = p
			return true
		}
	case KeyOrigin:
		if p, ok := v.(Vec2); ok {
			n.Origin = p
			return true
		}
	case KeyIgnore:
		if b, ok := v.(bool); ok {
			n.Ignore = b
			return true
		}
	case KeySilent:
		if b, ok := v.(bool); ok {
			n.Silent = b
			return true
		}
	case KeyDraggable:
		switch d := v.(type) {
		case DragMode:
			n.Draggable = d
			return true
		case bool:
			if d {
				n.Draggable = DragFree
			} else {
				n.Draggable = DragNone
			}
			return true
		}
	case KeyText:
		if s, ok := v.(string); ok {
			n.Text = s
			return true
		}
	}
	warnPropMismatch(key, v)
	return false
}

// --- Style as target ---

type styleTarget struct{ n *Node }

func (t styleTarget) owner() *Node { return t.n }

func (t styleTarget) getProp(key PropKey) (any, bool) {
	s := t.n.Style
	if s == nil {
		return nil, false
	}
	switch key {
	case KeyOpacity:
		return s.Opacity, true
	case KeyFill:
		if s.Fill == nil {
			return nil, false
		}
		return *s.Fill, true
	case KeyStroke:
		if s.Stroke == nil {
			return nil, false
		}
		return *s.Stroke, true
	case KeyLineWidth:
		return s.LineWidth, true
	case KeyShadowBlur:
		return s.ShadowBlur, true
	case KeyShadowOffsetX:
		return s.ShadowOffsetX, true
	case KeyShadowOffsetY:
		return s.ShadowOffsetY, true
	case KeyTextAlign:
		return s.TextAlign, true
	case KeyVerticalAlign:
		return s.VerticalAlign, true
	}
	return nil, false
}

func (t styleTarget) setProp(key PropKey, v any) bool {
	s := t.n.ensureStyle()
	switch key {
	case KeyOpacity:
		if f, ok := v.(float64); ok {
			s.Opacity = f
			return true
		}
	case KeyFill:
		if c, ok := v.(Color); ok {
			s.Fill = &c
			return true
		}
	case KeyStroke:
		if c, ok := v.(Color); ok {
			s.Stroke = &c
			return true
		}
	case KeyLineWidth:
		if f, ok := v.(float64); ok {
			s.LineWidth = f
			return true
		}
	case KeyShadowBlur:
		if f, ok := v.(float64); ok {
			s.ShadowBlur = f
			return true
		}
	case KeyShadowOffsetX:
		if f, ok := v.(float64); ok {
			s.ShadowOffsetX = f
			return true
		}
	case KeyShadowOffsetY:
		if f, ok := v.(float64); ok {
			s.ShadowOffsetY = f
			return true
		}
	case KeyTextAlign:
		if a, ok := v.(TextAlign); ok {
			s.TextAlign = a
			return true
		}
	case KeyVerticalAlign:
		if a, ok := v.(VerticalAlign); ok {
			s.VerticalAlign = a
			return true
		}
	}
	warnPropMismatch(key, v)
	return false
}

// --- Shape as target ---

type shapeTarget struct{ n *Node }

func (t shapeTarget) owner() *Node { return t.n }

func (t shapeTarget) getProp(key PropKey) (any, bool) {
	sh := t.n.Shape
	if sh == nil {
		return nil, false
	}
	switch key {
	case KeyX:
		return sh.X, true
	case KeyY:
		return sh.Y, true
	case KeyWidth:
		return sh.Width, true
	case KeyHeight:
		return sh.Height, true
	case KeyR:
		return sh.R, true
	}
	return nil, false
}

func (t shapeTarget) setProp(key PropKey, v any) bool {
	f, ok := v.(float64)
	if !ok {
		warnPropMismatch(key, v)
		return false
	}
	sh := t.n.ensureShape()
	switch key {
	case KeyX:
		sh.X = f
	case KeyY:
		sh.Y = f
	case KeyWidth:
		sh.Width = f
	case KeyHeight:
		sh.Height = f
	case KeyR:
		sh.R = f
	default:
		warnPropMismatch(key, v)
		return false
	}
	return true
}

// --- Attr dispatch ---

// Attr applies a bag of property values through each key's typed setter and
// marks the node dirty once. Nested KeyStyle/KeyShape bags route to the
// style and shape sub-objects; KeyTextConfig, KeyTextContent, and KeyClipPath
// route through their dedicated setters. Mismatched value types are logged
// and skipped.
func (n *Node) Attr(props Props) {
	for key, v := range props {
		n.attrKV(key, v)
	}
	n.MarkDirty()
}

func (n *Node) attrKV(key PropKey, v any) {
	switch key {
	case KeyStyle:
		sub, ok := v.(Props)
		if !ok {
			warnPropMismatch(key, v)
			return
		}
		st := styleTarget{n}
		for k, sv := range sub {
			st.setProp(k, sv)
		}
	case KeyShape:
		sub, ok := v.(Props)
		if !ok {
			warnPropMismatch(key, v)
			return
		}
		st := shapeTarget{n}
		for k, sv := range sub {
			st.setProp(k, sv)
		}
	case KeyTextConfig:
		cfg, ok := v.(*TextConfig)
		if !ok {
			warnPropMismatch(key, v)
			return
		}
		n.SetTextConfig(cfg)
	case KeyTextContent:
		label, ok := v.(*Node)
		if !ok {
			warnPropMismatch(key, v)
			return
		}
		n.SetTextContent(label)
	case KeyClipPath:
		clip, ok := v.(*Node)
		if !ok {
			warnPropMismatch(key, v)
			return
		}
		n.SetClipPath(clip)
	default:
		selfTarget{n}.setProp(key, v)
	}
}
