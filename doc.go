// Package zrender is a retained-mode 2D scene-graph node model for
// [Ebitengine].
//
// It provides the node tree, transform hierarchy, named visual states,
// attached labels, clip relations, and keyframe property animation (via
// [gween]) that a canvas-style renderer needs.
//
// # Quick start
//
// Build a tree of nodes, attach it to a [Scheduler], and drive both from an
// [ebiten.Game]:
//
//	sched := zrender.NewScheduler()
//	painter := zrender.NewPainter()
//
//	root := zrender.NewGroup("root")
//	root.AddToHost(sched)
//
//	box := zrender.NewRect("box", zrender.Shape{Width: 80, Height: 40})
//	box.SetStyle(zrender.Props{zrender.KeyFill: zrender.Color{R: 0.3, G: 0.7, B: 1, A: 1}})
//	root.AddChild(box)
//
//	type Game struct{}
//
//	func (*Game) Update() error {
//		sched.Update(1000.0 / float64(ebiten.TPS()))
//		return nil
//	}
//	func (*Game) Draw(screen *ebiten.Image)    { painter.Paint(screen, root) }
//	func (*Game) Layout(w, h int) (int, int)   { return w, h }
//
// # Nodes
//
// Every visual element is a [Node]. Create them with the typed constructors
// [NewGroup], [NewRect], [NewCircle], [NewText], and [NewImage]; only groups
// carry children. Mutate properties directly or in bulk through [Node.Attr]:
//
//	box.Attr(zrender.Props{
//		zrender.KeyPosition: zrender.Vec2{X: 100, Y: 50},
//		zrender.KeyRotation: math.Pi / 8,
//	})
//
// # Animation
//
// [Node.AnimateTo] and [Node.AnimateFrom] turn a property bag into tweened
// transitions; [Node.Animate] gives keyframe-level control. Animators advance
// when the host [Scheduler] ticks.
//
// # States
//
// Named states ([Node.EnsureState], [Node.UseState]) overlay property sets on
// top of the node's normal baseline and restore it on the way back.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package zrender
