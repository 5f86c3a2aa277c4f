package zrender

import "image"

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — the node model is
// single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path; the Type tag
// tells the painter how to read the visual payload.
type Node struct {
	Transform

	// Identity
	id   uint32
	Name string
	Type NodeType

	// Hierarchy and host linkage
	parent   *Node
	children []*Node
	host     Host

	// Visibility & interaction
	Ignore    bool
	Silent    bool
	Draggable DragMode
	Dragging  bool

	// Visual payload
	Style *Style
	Shape *Shape
	Text  string
	Image image.Image

	// Label relation
	TextConfig    *TextConfig
	textContent   *Node
	defaultFill   *Color
	defaultStroke *Color

	// Clip relation
	clipPath *Node

	// hostTarget points back at the node this one serves as a label or
	// clip path. Nil for free-standing nodes.
	hostTarget *Node

	// States
	states        map[string]*State
	currentStates []string
	normalState   *normalSnapshot

	// Animation
	animators []*Animator

	// Overridable hooks: bounding geometry and the inside-label contrast
	// heuristic.
	BoundsFunc       func() (Rect, bool)
	InsideFillFunc   func() Color
	InsideStrokeFunc func(fill Color) Color

	// Redraw
	dirty bool

	em emitter
}

// nodeDefaults sets the common default field values shared by all
// constructors.
func nodeDefaults(n *Node) {
	n.id = nextNodeID()
	n.Scale = Vec2{1, 1}
	n.matrix = identityTransform
	n.dirty = true
}

// NewNode creates a bare node with no visual payload.
func NewNode(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeNode}
	nodeDefaults(n)
	return n
}

// NewGroup creates a group node. Only groups accept children.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewRect creates a rectangle node.
func NewRect(name string, shape Shape) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Style: NewStyle(), Shape: &shape}
	nodeDefaults(n)
	return n
}

// NewCircle creates a circle node; Shape.X/Y is the center and Shape.R the
// radius.
func NewCircle(name string, shape Shape) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Style: NewStyle(), Shape: &shape}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content.
func NewText(name, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Style: NewStyle(), Text: content}
	nodeDefaults(n)
	return n
}

// NewImage creates an image node; the shape rect places and sizes the image.
func NewImage(name string, img image.Image, shape Shape) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Style: NewStyle(), Shape: &shape, Image: img}
	nodeDefaults(n)
	return n
}

// ID returns the node's unique id.
func (n *Node) ID() uint32 {
	return n.id
}

// IsGroup reports whether the node is a group.
func (n *Node) IsGroup() bool {
	return n.Type == NodeTypeGroup
}

// Parent returns the node this one is parented under, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Host returns the host context the node is live in, or nil.
func (n *Node) Host() Host {
	return n.host
}

// --- Redraw flag ---

// MarkDirty flags the node for repaint and asks the host for a refresh.
func (n *Node) MarkDirty() {
	n.dirty = true
	if n.host != nil {
		n.host.Refresh()
	}
}

// Dirty reports whether the node needs repainting.
func (n *Node) Dirty() bool {
	return n.dirty
}

// ConsumeDirty returns the dirty flag and clears it.
func (n *Node) ConsumeDirty() bool {
	d := n.dirty
	n.dirty = false
	return d
}

// --- Frame update ---

// Update recomputes the node's transform and re-resolves the attached
// label. The host calls it once per frame, parents before children.
func (n *Node) Update() {
	n.UpdateTransform()
	if n.textContent != nil {
		n.updateAttachedLabel()
	}
}

// --- Host attach/detach ---

// AddToHost wires the node into a host context: running animators register
// with the host's scheduler, and the label, clip path, and children attach
// recursively.
func (n *Node) AddToHost(h Host) {
	n.host = h
	for _, a := range n.animators {
		a.host = h
		h.AddAnimator(a)
	}
	if n.clipPath != nil {
		n.clipPath.AddToHost(h)
	}
	if n.textContent != nil {
		n.textContent.AddToHost(h)
	}
	for _, child := range n.children {
		child.AddToHost(h)
	}
	n.MarkDirty()
}

// RemoveFromHost mirrors AddToHost: animators deregister from the host's
// scheduler and the label, clip path, and children detach recursively.
func (n *Node) RemoveFromHost(h Host) {
	for _, a := range n.animators {
		h.RemoveAnimator(a)
		a.host = nil
	}
	n.host = nil
	if n.clipPath != nil {
		n.clipPath.RemoveFromHost(h)
	}
	if n.textContent != nil {
		n.textContent.RemoveFromHost(h)
	}
	for _, child := range n.children {
		child.RemoveFromHost(h)
	}
	h.Refresh()
}

// --- Label relation ---

// SetTextContent attaches a label node. Labels are exclusively owned:
// attaching a node that already serves another node panics. Attaching while
// the node is live registers the label with the host.
func (n *Node) SetTextContent(label *Node) {
	if label == nil {
		panic("zrender: nil label")
	}
	if label == n {
		panic("zrender: node cannot be its own label")
	}
	if n.textContent == label {
		return
	}
	if label.hostTarget != nil && label.hostTarget != n {
		panic("zrender: label is already attached to another node")
	}
	if label.host != nil && label.hostTarget == nil {
		panic("zrender: label was added to a host on its own")
	}
	if n.textContent != nil {
		n.RemoveTextContent()
	}
	label.hostTarget = n
	n.textContent = label
	if n.host != nil {
		label.AddToHost(n.host)
	}
	n.MarkDirty()
}

// RemoveTextContent detaches the label, deregistering it from the host when
// the node is live. No-op without a label.
func (n *Node) RemoveTextContent() {
	label := n.textContent
	if label == nil {
		return
	}
	label.hostTarget = nil
	n.textContent = nil
	if n.host != nil {
		label.RemoveFromHost(n.host)
	}
	n.MarkDirty()
}

// TextContent returns the attached label, or nil.
func (n *Node) TextContent() *Node {
	return n.textContent
}

// --- Clip relation ---

// SetClipPath sets the node whose bounding geometry clips this one. A clip
// node serves one target at a time: claiming a clip that is in use releases
// its previous owner first.
func (n *Node) SetClipPath(clip *Node) {
	if clip == nil {
		panic("zrender: nil clip path")
	}
	if clip == n {
		panic("zrender: node cannot clip itself")
	}
	if n.clipPath == clip {
		return
	}
	if owner := clip.hostTarget; owner != nil && owner != n {
		if owner.clipPath != clip {
			panic("zrender: clip path node is attached as a label elsewhere")
		}
		owner.RemoveClipPath()
	}
	if n.clipPath != nil {
		n.RemoveClipPath()
	}
	clip.hostTarget = n
	n.clipPath = clip
	if n.host != nil {
		clip.AddToHost(n.host)
	}
	n.MarkDirty()
}

// RemoveClipPath releases the clip node, deregistering it from the host
// when the node is live. No-op without a clip.
func (n *Node) RemoveClipPath() {
	clip := n.clipPath
	if clip == nil {
		return
	}
	clip.hostTarget = nil
	n.clipPath = nil
	if n.host != nil {
		clip.RemoveFromHost(n.host)
	}
	n.MarkDirty()
}

// ClipPath returns the clip node, or nil.
func (n *Node) ClipPath() *Node {
	return n.clipPath
}

// --- Bounding geometry ---

// GetBoundingRect returns the node's bounding rect in its own local space.
// BoundsFunc overrides the builtin rules when set. Groups union their
// children's rects mapped through each child's local transform; nodes with
// no measurable geometry report false.
func (n *Node) GetBoundingRect() (Rect, bool) {
	if n.BoundsFunc != nil {
		return n.BoundsFunc()
	}
	switch n.Type {
	case NodeTypeRect, NodeTypeImage:
		if n.Shape != nil {
			return Rect{n.Shape.X, n.Shape.Y, n.Shape.Width, n.Shape.Height}, true
		}
	case NodeTypeCircle:
		if n.Shape != nil {
			r := n.Shape.R
			return Rect{n.Shape.X - r, n.Shape.Y - r, 2 * r, 2 * r}, true
		}
	case NodeTypeGroup:
		var out Rect
		found := false
		for _, child := range n.children {
			cr, ok := child.GetBoundingRect()
			if !ok {
				continue
			}
			cr = rectApplyTransform(cr, child.LocalTransform())
			if !found {
				out, found = cr, true
			} else {
				out = out.union(cr)
			}
		}
		return out, found
	}
	return Rect{}, false
}
