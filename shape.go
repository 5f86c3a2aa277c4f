package zrender

// Shape is the geometry bag of a drawable node, in the node's local space.
// Rect and image nodes use X, Y, Width, Height; circle nodes use X, Y as the
// center and R as the radius. All fields animate.
type Shape struct {
	X, Y          float64
	Width, Height float64
	R             float64
}

// ensureShape lazily creates the node's shape bag.
func (n *Node) ensureShape() *Shape {
	if n.Shape == nil {
		n.Shape = &Shape{}
	}
	return n.Shape
}

// SetShape applies a bag of shape properties and marks the node dirty.
func (n *Node) SetShape(props Props) {
	st := shapeTarget{n}
	for k, v := range props {
		st.setProp(k, v)
	}
	n.MarkDirty()
}
