package zrender

// Style is the paint bag of a drawable node. Fill and Stroke are nil when
// unset; painters decide their own fallbacks (labels fall back to the
// inside-color cache, see Node.DefaultTextColor).
type Style struct {
	Fill          *Color
	Stroke        *Color
	Opacity       float64
	LineWidth     float64
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
	TextAlign     TextAlign
	VerticalAlign VerticalAlign
}

// NewStyle returns a style with the default opacity and line width.
func NewStyle() *Style {
	return &Style{Opacity: 1, LineWidth: 1}
}

// ensureStyle lazily creates the node's style bag.
func (n *Node) ensureStyle() *Style {
	if n.Style == nil {
		n.Style = NewStyle()
	}
	return n.Style
}

// SetStyle applies a bag of style properties and marks the node dirty.
func (n *Node) SetStyle(props Props) {
	st := styleTarget{n}
	for k, v := range props {
		st.setProp(k, v)
	}
	n.MarkDirty()
}
