package zrender

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer event names raised through Node.Trigger. Handlers receive a
// PointerEvent as Event.Data.
const (
	EventClick     = "click"
	EventMouseDown = "mousedown"
	EventMouseUp   = "mouseup"
	EventMouseMove = "mousemove"
	EventMouseOver = "mouseover"
	EventMouseOut  = "mouseout"
	EventDragStart = "dragstart"
	EventDrag      = "drag"
	EventDragEnd   = "dragend"
	EventDragEnter = "dragenter"
	EventDragLeave = "dragleave"
	EventDrop      = "drop"
)

// PointerEvent is the payload carried by pointer events.
type PointerEvent struct {
	X, Y           float64 // cursor position in world space
	LocalX, LocalY float64 // cursor position in the target's local space
	DX, DY         float64 // movement since the previous sample
	StartX, StartY float64 // press position, meaningful for drag events
}

// defaultDragDeadZone is how far in pixels the cursor must travel from the
// press point before a hold turns into a drag instead of a click.
const defaultDragDeadZone = 4.0

// Pointer drives hover, click, and drag gestures against a node tree. Hit
// testing walks the tree in reverse paint order so the topmost node under
// the cursor wins. A node whose drag mode is not DragNone is moved through
// Drift while dragged, which applies the mode's axis lock, and carries
// Dragging for the duration so hit testing falls through to the nodes
// beneath it.
type Pointer struct {
	root     *Node
	deadZone float64

	down      bool
	dragging  bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	downNode  *Node
	hoverNode *Node
	dragNode  *Node
}

// NewPointer creates a pointer driver over the given tree.
func NewPointer(root *Node) *Pointer {
	if root == nil {
		panic("zrender: NewPointer requires a root node")
	}
	return &Pointer{root: root, deadZone: defaultDragDeadZone}
}

// SetDragDeadZone sets how far in pixels the cursor must move from the press
// point before a drag starts. A press released inside the zone is a click.
func (p *Pointer) SetDragDeadZone(px float64) {
	p.deadZone = px
}

// Update samples the mouse from ebiten and advances the gesture state. Call
// it once per frame, after the tree's transforms are up to date.
func (p *Pointer) Update() {
	mx, my := ebiten.CursorPosition()
	p.ProcessPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// ProcessPointer advances the gesture state from one cursor sample. It is
// the platform-independent core behind Update.
func (p *Pointer) ProcessPointer(x, y float64, pressed bool) {
	target := p.HitTest(x, y)
	moved := x != p.lastX || y != p.lastY

	// Hover transitions run in every state so targets under an active
	// drag still receive enter/leave notifications.
	if target != p.hoverNode {
		if p.hoverNode != nil {
			p.fire(p.hoverNode, EventMouseOut, x, y, 0, 0)
			if p.dragging {
				p.fire(p.hoverNode, EventDragLeave, x, y, 0, 0)
			}
		}
		if target != nil {
			p.fire(target, EventMouseOver, x, y, 0, 0)
			if p.dragging {
				p.fire(target, EventDragEnter, x, y, 0, 0)
			}
		}
		p.hoverNode = target
	}
	if moved {
		p.fire(target, EventMouseMove, x, y, x-p.lastX, y-p.lastY)
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.startX, p.startY = x, y
		p.downNode = target
		p.fire(target, EventMouseDown, x, y, 0, 0)

	case !pressed && p.down:
		if p.dragging {
			p.endDrag(x, y, target)
		} else if target != nil && target == p.downNode {
			p.fire(target, EventClick, x, y, 0, 0)
		}
		p.fire(target, EventMouseUp, x, y, 0, 0)
		p.down = false
		p.downNode = nil

	case pressed && moved:
		if !p.dragging && p.downNode != nil && p.downNode.Draggable != DragNone {
			dx := x - p.startX
			dy := y - p.startY
			if math.Sqrt(dx*dx+dy*dy) > p.deadZone {
				p.beginDrag(x, y)
			}
		}
		if p.dragging {
			p.dragNode.Drift(x-p.lastX, y-p.lastY)
			p.fire(p.dragNode, EventDrag, x, y, x-p.lastX, y-p.lastY)
		}
	}

	p.lastX, p.lastY = x, y
}

func (p *Pointer) beginDrag(x, y float64) {
	p.dragging = true
	p.dragNode = p.downNode
	p.dragNode.Dragging = true
	p.fire(p.dragNode, EventDragStart, x, y, x-p.startX, y-p.startY)
}

func (p *Pointer) endDrag(x, y float64, dropTarget *Node) {
	node := p.dragNode
	p.dragging = false
	p.dragNode = nil
	node.Dragging = false
	p.fire(node, EventDragEnd, x, y, 0, 0)
	if dropTarget != nil && dropTarget != node {
		p.fire(dropTarget, EventDrop, x, y, 0, 0)
	}
}

// fire triggers a pointer event on node with a populated payload. Events
// with no target are dropped.
func (p *Pointer) fire(node *Node, event string, x, y, dx, dy float64) {
	if node == nil {
		return
	}
	lx, ly := node.WorldToLocal(x, y)
	node.Trigger(event, PointerEvent{
		X: x, Y: y,
		LocalX: lx, LocalY: ly,
		DX: dx, DY: dy,
		StartX: p.startX, StartY: p.startY,
	})
}

// --- Hit testing ---

// HitTest returns the topmost node whose geometry contains the world-space
// point, or nil. Later siblings paint over earlier ones, so children are
// visited in reverse order and descendants are tested before their parent.
// Ignore prunes the subtree like the painter does, Silent makes the node and
// its descendants transparent to hits, and a node mid-drag is skipped so the
// nodes underneath can receive hover and drop events.
func (p *Pointer) HitTest(x, y float64) *Node {
	return hitTest(p.root, x, y)
}

func hitTest(n *Node, x, y float64) *Node {
	if n.Ignore || n.Silent || n.Dragging {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if nodeContains(n, x, y) {
		return n
	}
	return nil
}

// nodeContains reports whether the world-space point falls inside the node's
// geometry. Groups only route events to their children. Circles test the
// true radius; everything else its bounding rect.
func nodeContains(n *Node, x, y float64) bool {
	if n.IsGroup() {
		return false
	}
	lx, ly := n.WorldToLocal(x, y)
	if n.Type == NodeTypeCircle && n.BoundsFunc == nil {
		if n.Shape == nil {
			return false
		}
		dx := lx - n.Shape.X
		dy := ly - n.Shape.Y
		return dx*dx+dy*dy <= n.Shape.R*n.Shape.R
	}
	r, ok := n.GetBoundingRect()
	if !ok {
		return false
	}
	return r.Contains(lx, ly)
}
