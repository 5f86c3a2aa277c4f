package zrender

// Transform holds a node's local transform properties and the composed
// affine matrix. It is embedded in Node; the matrix is world-space once the
// node has a parent chain (see Node.UpdateTransform).
type Transform struct {
	Position Vec2
	Scale    Vec2
	Origin   Vec2
	Rotation float64

	matrix [6]float64
}

// Matrix returns the last composed affine matrix. Call UpdateTransform (or
// Node.Update) first to pick up property changes.
func (t *Transform) Matrix() [6]float64 {
	return t.matrix
}

// LocalTransform composes the local matrix from the current transform
// properties without touching the cached matrix.
func (t *Transform) LocalTransform() [6]float64 {
	return composeTransform(t.Position, t.Rotation, t.Scale, t.Origin)
}

// UpdateTransform recomposes the node's matrix from position, rotation,
// scale, and origin, then left-multiplies the parent's matrix when the node
// is parented. Parents are expected to be updated first; the painter walks
// the tree top-down, which guarantees that.
func (n *Node) UpdateTransform() {
	m := n.LocalTransform()
	if p := n.parent; p != nil {
		m = multiplyAffine(p.matrix, m)
	}
	n.matrix = m
}

// DecomposeTransform recovers position, rotation, and scale from the node's
// matrix so the properties stay consistent after direct matrix edits. For a
// parented node the parent's contribution is stripped first. The origin is
// kept as-is; it cannot be recovered from the matrix alone.
func (n *Node) DecomposeTransform() {
	m := n.matrix
	if p := n.parent; p != nil {
		m = multiplyAffine(invertAffine(p.matrix), m)
	}
	n.Position, n.Rotation, n.Scale = decomposeTransform(m, n.Origin)
}

// Drift translates the node by a global-space delta, honoring the axis lock
// of the node's drag mode. The delta is applied to the raw matrix and the
// transform properties are re-decomposed from it, so drag gestures stay
// consistent with direct matrix edits.
func (n *Node) Drift(dx, dy float64) {
	switch n.Draggable {
	case DragHorizontal:
		dy = 0
	case DragVertical:
		dx = 0
	}
	n.matrix[4] += dx
	n.matrix[5] += dy
	n.DecomposeTransform()
	n.MarkDirty()
}

// --- Transform property setters ---

// SetPosition sets the node's position and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.Position = Vec2{x, y}
	n.MarkDirty()
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.Scale = Vec2{sx, sy}
	n.MarkDirty()
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.MarkDirty()
}

// SetOrigin sets the rotation/scale pivot and marks it dirty.
func (n *Node) SetOrigin(x, y float64) {
	n.Origin = Vec2{x, y}
	n.MarkDirty()
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate
// space, using the matrix composed by the last UpdateTransform.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.matrix)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.matrix, lx, ly)
}
