package zrender

import (
	"strings"
	"testing"
)

// recordEvents registers handlers for the named events on n and returns a
// log that records them in fire order.
func recordEvents(n *Node, names ...string) *[]string {
	log := &[]string{}
	for _, name := range names {
		n.On(name, func(Event) { *log = append(*log, name) })
	}
	return log
}

func assertEventLog(t *testing.T, name string, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// pointerScene builds a root with two side-by-side rects: a covers
// (0,0)-(100,100) and b covers (200,0)-(300,100).
func pointerScene() (*Pointer, *Node, *Node) {
	root := NewGroup("root")
	a := NewRect("a", Shape{Width: 100, Height: 100})
	b := NewRect("b", Shape{X: 200, Width: 100, Height: 100})
	root.AddChild(a)
	root.AddChild(b)
	return NewPointer(root), a, b
}

// --- hit testing ---

func TestHitTestTopmostWins(t *testing.T) {
	root := NewGroup("root")
	under := NewRect("under", Shape{Width: 100, Height: 100})
	over := NewRect("over", Shape{X: 50, Y: 50, Width: 100, Height: 100})
	root.AddChild(under)
	root.AddChild(over)
	p := NewPointer(root)

	if hit := p.HitTest(75, 75); hit != over {
		t.Errorf("HitTest(75, 75) = %v, want over", hit)
	}
	if hit := p.HitTest(25, 25); hit != under {
		t.Errorf("HitTest(25, 25) = %v, want under", hit)
	}
	if hit := p.HitTest(300, 300); hit != nil {
		t.Errorf("HitTest(300, 300) = %v, want nil", hit)
	}
}

func TestHitTestSilentFallsThrough(t *testing.T) {
	root := NewGroup("root")
	under := NewRect("under", Shape{Width: 100, Height: 100})
	over := NewRect("over", Shape{Width: 100, Height: 100})
	over.Silent = true
	root.AddChild(under)
	root.AddChild(over)
	p := NewPointer(root)

	if hit := p.HitTest(50, 50); hit != under {
		t.Errorf("HitTest(50, 50) = %v, want under", hit)
	}
}

func TestHitTestSilentGroupSilencesSubtree(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("g")
	g.Silent = true
	g.AddChild(NewRect("r", Shape{Width: 50, Height: 50}))
	root.AddChild(g)
	p := NewPointer(root)

	if hit := p.HitTest(25, 25); hit != nil {
		t.Errorf("HitTest(25, 25) = %v, want nil", hit)
	}
}

func TestHitTestIgnoreSkipsSubtree(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("g")
	g.Ignore = true
	g.AddChild(NewRect("r", Shape{Width: 50, Height: 50}))
	root.AddChild(g)
	p := NewPointer(root)

	if hit := p.HitTest(25, 25); hit != nil {
		t.Errorf("HitTest(25, 25) = %v, want nil", hit)
	}
}

func TestHitTestSkipsDraggedNode(t *testing.T) {
	root := NewGroup("root")
	under := NewRect("under", Shape{Width: 100, Height: 100})
	over := NewRect("over", Shape{Width: 100, Height: 100})
	over.Dragging = true
	root.AddChild(under)
	root.AddChild(over)
	p := NewPointer(root)

	if hit := p.HitTest(50, 50); hit != under {
		t.Errorf("HitTest(50, 50) = %v, want under", hit)
	}
}

func TestHitTestCircleUsesRadius(t *testing.T) {
	root := NewGroup("root")
	c := NewCircle("c", Shape{X: 50, Y: 50, R: 20})
	root.AddChild(c)
	p := NewPointer(root)

	if hit := p.HitTest(50, 69); hit != c {
		t.Errorf("HitTest(50, 69) = %v, want circle", hit)
	}
	// Inside the bounding rect but outside the radius.
	if hit := p.HitTest(66, 66); hit != nil {
		t.Errorf("HitTest(66, 66) = %v, want nil", hit)
	}
}

func TestHitTestGroupIsTransparent(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("g")
	g.AddChild(NewRect("r1", Shape{Width: 20, Height: 20}))
	g.AddChild(NewRect("r2", Shape{X: 40, Y: 40, Width: 20, Height: 20}))
	root.AddChild(g)
	p := NewPointer(root)

	// Inside the group's union bounds but in neither child.
	if hit := p.HitTest(30, 30); hit != nil {
		t.Errorf("HitTest(30, 30) = %v, want nil", hit)
	}
}

func TestHitTestUsesWorldTransform(t *testing.T) {
	root := NewGroup("root")
	r := NewRect("r", Shape{Width: 20, Height: 20})
	r.Position = Vec2{100, 50}
	root.AddChild(r)
	collectCommands(root)
	p := NewPointer(root)

	if hit := p.HitTest(110, 60); hit != r {
		t.Errorf("HitTest(110, 60) = %v, want rect", hit)
	}
	if hit := p.HitTest(10, 10); hit != nil {
		t.Errorf("HitTest(10, 10) = %v, want nil", hit)
	}
}

func TestHitTestUnmeasurableNeedsBoundsFunc(t *testing.T) {
	root := NewGroup("root")
	txt := NewText("t", "hi")
	root.AddChild(txt)
	p := NewPointer(root)

	if hit := p.HitTest(5, 5); hit != nil {
		t.Errorf("HitTest without bounds = %v, want nil", hit)
	}
	txt.BoundsFunc = func() (Rect, bool) {
		return Rect{0, 0, 50, 10}, true
	}
	if hit := p.HitTest(5, 5); hit != txt {
		t.Errorf("HitTest with bounds = %v, want text", hit)
	}
}

func TestNewPointerNilRootPanics(t *testing.T) {
	assertPanic(t, "NewPointer(nil)", func() {
		NewPointer(nil)
	})
}

// --- gesture state machine ---

func TestPointerClickSequence(t *testing.T) {
	p, a, _ := pointerScene()
	log := recordEvents(a, EventMouseOver, EventMouseMove, EventMouseDown, EventClick, EventMouseUp)
	var got PointerEvent
	a.On(EventClick, func(ev Event) { got = ev.Data.(PointerEvent) })

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(50, 50, false)

	assertEventLog(t, "click sequence", *log,
		EventMouseOver, EventMouseMove, EventMouseDown, EventClick, EventMouseUp)
	assertNear(t, "click X", got.X, 50)
	assertNear(t, "click Y", got.Y, 50)
	assertNear(t, "click LocalX", got.LocalX, 50)
	assertNear(t, "click LocalY", got.LocalY, 50)
}

func TestPointerClickLocalCoords(t *testing.T) {
	root := NewGroup("root")
	r := NewRect("r", Shape{Width: 100, Height: 100})
	r.Position = Vec2{200, 100}
	root.AddChild(r)
	collectCommands(root)
	p := NewPointer(root)

	var got PointerEvent
	r.On(EventClick, func(ev Event) { got = ev.Data.(PointerEvent) })

	p.ProcessPointer(210, 130, false)
	p.ProcessPointer(210, 130, true)
	p.ProcessPointer(210, 130, false)

	assertNear(t, "click LocalX", got.LocalX, 10)
	assertNear(t, "click LocalY", got.LocalY, 30)
}

func TestPointerClickRequiresSameTarget(t *testing.T) {
	p, a, b := pointerScene()
	aClicks := recordEvents(a, EventClick)
	bLog := recordEvents(b, EventClick, EventMouseUp)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(250, 50, true)
	p.ProcessPointer(250, 50, false)

	if len(*aClicks) != 0 {
		t.Errorf("clicks on a = %d, want 0", len(*aClicks))
	}
	assertEventLog(t, "events on b", *bLog, EventMouseUp)
}

func TestPointerHoverEnterLeave(t *testing.T) {
	p, a, b := pointerScene()
	aLog := recordEvents(a, EventMouseOver, EventMouseOut)
	bLog := recordEvents(b, EventMouseOver, EventMouseOut)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(250, 50, false)
	p.ProcessPointer(150, 50, false)

	assertEventLog(t, "hover on a", *aLog, EventMouseOver, EventMouseOut)
	assertEventLog(t, "hover on b", *bLog, EventMouseOver, EventMouseOut)
}

func TestPointerDragLifecycle(t *testing.T) {
	p, a, _ := pointerScene()
	a.Draggable = DragFree
	log := recordEvents(a, EventDragStart, EventDrag, EventDragEnd)
	var deltas []Vec2
	var draggingDuring bool
	a.On(EventDrag, func(ev Event) {
		pe := ev.Data.(PointerEvent)
		deltas = append(deltas, Vec2{pe.DX, pe.DY})
		draggingDuring = a.Dragging
	})

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(60, 50, true)
	p.ProcessPointer(70, 60, true)
	p.ProcessPointer(70, 60, false)

	assertEventLog(t, "drag events", *log, EventDragStart, EventDrag, EventDrag, EventDragEnd)
	if len(deltas) != 2 {
		t.Fatalf("len(deltas) = %d, want 2", len(deltas))
	}
	assertVec2(t, "first drag delta", deltas[0], Vec2{10, 0})
	assertVec2(t, "second drag delta", deltas[1], Vec2{10, 10})
	assertVec2(t, "dragged position", a.Position, Vec2{20, 10})
	if !draggingDuring {
		t.Error("Dragging = false during drag, want true")
	}
	if a.Dragging {
		t.Error("Dragging = true after release, want false")
	}
}

func TestPointerDragDeadZone(t *testing.T) {
	p, a, _ := pointerScene()
	a.Draggable = DragFree
	log := recordEvents(a, EventDragStart, EventClick)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(52, 52, true)
	p.ProcessPointer(52, 52, false)

	assertEventLog(t, "dead zone events", *log, EventClick)
	assertVec2(t, "position", a.Position, Vec2{0, 0})
}

func TestPointerDragAxisLock(t *testing.T) {
	p, a, _ := pointerScene()
	a.Draggable = DragHorizontal

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(80, 90, true)
	p.ProcessPointer(80, 90, false)

	assertVec2(t, "locked position", a.Position, Vec2{30, 0})
}

func TestPointerDragEnterDrop(t *testing.T) {
	p, a, b := pointerScene()
	a.Draggable = DragFree
	aLog := recordEvents(a, EventMouseOver, EventMouseMove, EventMouseDown,
		EventDragStart, EventDrag, EventMouseOut, EventDragLeave, EventDragEnd)
	bLog := recordEvents(b, EventMouseOver, EventMouseMove, EventDragEnter, EventDrop, EventMouseUp)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(55, 50, true)
	p.ProcessPointer(250, 50, true)
	p.ProcessPointer(250, 50, false)

	assertEventLog(t, "events on a", *aLog,
		EventMouseOver, EventMouseMove, EventMouseDown, EventMouseMove,
		EventDragStart, EventDrag, EventMouseOut, EventDragLeave, EventDrag, EventDragEnd)
	assertEventLog(t, "events on b", *bLog,
		EventMouseOver, EventDragEnter, EventMouseMove, EventDrop, EventMouseUp)
	assertVec2(t, "dropped position", a.Position, Vec2{200, 0})
}

func TestPointerHoldWithoutDragMode(t *testing.T) {
	p, a, _ := pointerScene()
	log := recordEvents(a, EventDragStart, EventClick)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(80, 80, true)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(50, 50, false)

	assertEventLog(t, "hold events", *log, EventClick)
	assertVec2(t, "position", a.Position, Vec2{0, 0})
}

func TestPointerSetDragDeadZone(t *testing.T) {
	p, a, _ := pointerScene()
	a.Draggable = DragFree
	p.SetDragDeadZone(0)
	log := recordEvents(a, EventDragStart)

	p.ProcessPointer(50, 50, false)
	p.ProcessPointer(50, 50, true)
	p.ProcessPointer(51, 50, true)

	assertEventLog(t, "zero dead zone", *log, EventDragStart)
	assertVec2(t, "position", a.Position, Vec2{1, 0})
}
