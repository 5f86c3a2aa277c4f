package zrender

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// Mid-tween values pass through float32, so progression asserts allow a
// loose tolerance. Keyframe endpoints are assigned exactly.
const tweenTol = 1e-3

// --- progression ---

func TestAnimatorLinearProgression(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyPosition: Vec2{X: 100, Y: 200}}).
		Start(nil, false)

	if a.Update(500) {
		t.Fatal("Update(500) = true, want false")
	}
	assertWithin(t, "Position.X", n.Position.X, 50, tweenTol)
	assertWithin(t, "Position.Y", n.Position.Y, 100, tweenTol)

	if !a.Update(500) {
		t.Fatal("Update(500) = false, want true")
	}
	assertVec2(t, "Position", n.Position, Vec2{X: 100, Y: 200})
	if !a.Finished() {
		t.Error("Finished() = false, want true")
	}
}

func TestAnimatorSegmentChain(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(500, Props{KeyRotation: 50.0}).
		When(1000, Props{KeyRotation: 100.0}).
		Start(nil, false)

	a.Update(250)
	assertWithin(t, "Rotation", n.Rotation, 25, tweenTol)
	a.Update(500)
	assertWithin(t, "Rotation", n.Rotation, 75, tweenTol)
	if !a.Update(250) {
		t.Fatal("Update(250) = false, want true")
	}
	assertNear(t, "Rotation", n.Rotation, 100)
}

func TestAnimatorDelay(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyRotation: 10.0}).
		Delay(200).
		Start(nil, false)

	a.Update(100)
	assertNear(t, "Rotation during delay", n.Rotation, 0)
	a.Update(150)
	assertWithin(t, "Rotation", n.Rotation, 0.5, tweenTol)
}

func TestAnimatorEasingApplied(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyRotation: 100.0}).
		Start(ease.InQuad, false)

	a.Update(500)
	assertWithin(t, "Rotation", n.Rotation, 25, tweenTol)
}

// --- surfaces ---

func TestAnimatorStyleTarget(t *testing.T) {
	r := NewRect("r", Shape{Width: 10, Height: 10})
	a := r.Animate(TargetStyle, false).
		When(400, Props{KeyOpacity: 0.0}).
		Start(nil, false)

	a.Update(100)
	assertWithin(t, "Opacity", r.Style.Opacity, 0.75, tweenTol)
	a.Update(300)
	assertNear(t, "Opacity", r.Style.Opacity, 0)
}

func TestAnimatorShapeTarget(t *testing.T) {
	r := NewRect("r", Shape{Width: 10, Height: 10})
	a := r.Animate(TargetShape, false).
		When(200, Props{KeyWidth: 30.0}).
		Start(nil, false)

	a.Update(100)
	assertWithin(t, "Shape.Width", r.Shape.Width, 20, tweenTol)
	a.Update(100)
	assertNear(t, "Shape.Width", r.Shape.Width, 30)
}

func TestAnimatorColorTrack(t *testing.T) {
	r := NewRect("r", Shape{Width: 10, Height: 10})
	red := Color{R: 1, A: 1}
	r.Style.Fill = &red
	a := r.Animate(TargetStyle, false).
		When(100, Props{KeyFill: Color{B: 1, A: 1}}).
		Start(nil, false)

	a.Update(50)
	assertWithin(t, "Fill.R", r.Style.Fill.R, 0.5, tweenTol)
	assertWithin(t, "Fill.B", r.Style.Fill.B, 0.5, tweenTol)
	a.Update(50)
	assertNear(t, "Fill.B", r.Style.Fill.B, 1)
}

// --- keyframe handling ---

func TestAnimatorAssignsSingleZeroFrame(t *testing.T) {
	h := &recordHost{}
	n := NewNode("n")
	n.AddToHost(h)
	before := h.refreshes

	a := n.Animate(TargetSelf, false).
		When(0, Props{KeyPosition: Vec2{X: 9, Y: 9}}).
		Start(nil, false)

	assertVec2(t, "Position", n.Position, Vec2{X: 9, Y: 9})
	if !a.Finished() {
		t.Error("Finished() = false, want true")
	}
	if h.refreshes == before {
		t.Error("assignment did not request a refresh")
	}
	if h.has(a) {
		t.Error("finished animator still registered with host")
	}
	if len(n.animators) != 0 {
		t.Errorf("len(n.animators) = %d, want 0", len(n.animators))
	}
}

func TestAnimatorDropsEqualTracks(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(5, 5)
	doneFired := false
	a := n.Animate(TargetSelf, false).
		When(500, Props{KeyPosition: Vec2{X: 5, Y: 5}}).
		Done(func() { doneFired = true }).
		Start(nil, false)

	if !a.Finished() {
		t.Error("Finished() = false, want true")
	}
	if !doneFired {
		t.Error("Done callback did not fire synchronously")
	}
	if len(n.animators) != 0 {
		t.Errorf("len(n.animators) = %d, want 0", len(n.animators))
	}
}

func TestAnimatorForceKeepsEqualTracks(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(5, 5)
	doneFired := false
	a := n.Animate(TargetSelf, false).
		When(100, Props{KeyPosition: Vec2{X: 5, Y: 5}}).
		Done(func() { doneFired = true }).
		Start(nil, true)

	if a.Finished() {
		t.Fatal("forced animator finished synchronously")
	}
	a.Update(50)
	if doneFired {
		t.Fatal("Done fired before the clip ran out")
	}
	if !a.Update(50) {
		t.Fatal("Update(50) = false, want true")
	}
	if !doneFired {
		t.Error("Done callback did not fire at clip end")
	}
}

func TestAnimatorDiscreteSwitchesAtSegmentEnd(t *testing.T) {
	n := NewText("n", "start")
	a := n.Animate(TargetSelf, false).
		When(100, Props{KeyText: "hello"}).
		Start(nil, false)

	a.Update(50)
	if n.Text != "start" {
		t.Errorf("Text = %q, want %q mid-segment", n.Text, "start")
	}
	if !a.Update(50) {
		t.Fatal("Update(50) = false, want true")
	}
	if n.Text != "hello" {
		t.Errorf("Text = %q, want %q", n.Text, "hello")
	}
}

func TestAnimatorMismatchedValueSkipped(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(100, Props{KeyPosition: "not a vec"})
	if len(a.tracks) != 0 {
		t.Fatalf("len(a.tracks) = %d, want 0", len(a.tracks))
	}
	a.Start(nil, false)
	assertVec2(t, "Position", n.Position, Vec2{})
	if !a.Finished() {
		t.Error("Finished() = false, want true")
	}
}

func TestAnimatorWhenAfterStartPanics(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(100, Props{KeyRotation: 1.0}).
		Start(nil, false)
	assertPanic(t, "When after Start", func() {
		a.When(200, Props{KeyRotation: 2.0})
	})
}

// --- loop ---

func TestAnimatorLoopWraps(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, true).
		When(0, Props{KeyRotation: 0.0}).
		When(100, Props{KeyRotation: 10.0}).
		Start(nil, false)

	// 150ms into a 100ms loop is 50ms into the second pass.
	if a.Update(150) {
		t.Fatal("looping animator reported finished")
	}
	assertWithin(t, "Rotation", n.Rotation, 5, tweenTol)

	if a.Update(100) {
		t.Fatal("looping animator reported finished")
	}
	assertWithin(t, "Rotation after second wrap", n.Rotation, 5, tweenTol)

	if a.Finished() {
		t.Error("Finished() = true for a looping animator")
	}
	if len(n.animators) != 1 {
		t.Errorf("len(n.animators) = %d, want 1", len(n.animators))
	}
	a.Stop(false)
	if len(n.animators) != 0 {
		t.Errorf("len(n.animators) = %d after Stop, want 0", len(n.animators))
	}
}

// --- lifecycle ---

func TestAnimatorStopJumpToEnd(t *testing.T) {
	n := NewNode("n")
	doneFired := false
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyPosition: Vec2{X: 100, Y: 200}}).
		Done(func() { doneFired = true }).
		Start(nil, false)

	a.Update(300)
	a.Stop(true)
	assertVec2(t, "Position", n.Position, Vec2{X: 100, Y: 200})
	if doneFired {
		t.Error("Done fired for a stopped animator")
	}
	if a.Finished() {
		t.Error("Finished() = true after Stop")
	}
	if len(n.animators) != 0 {
		t.Errorf("len(n.animators) = %d, want 0", len(n.animators))
	}
}

func TestAnimatorStopKeepsCurrentValues(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyRotation: 100.0}).
		Start(nil, false)

	a.Update(300)
	a.Stop(false)
	assertWithin(t, "Rotation", n.Rotation, 30, tweenTol)
	if !a.Update(100) {
		t.Error("Update after Stop = false, want true")
	}
	assertWithin(t, "Rotation after dead Update", n.Rotation, 30, tweenTol)
}

func TestAnimatorPauseResume(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyRotation: 100.0}).
		Start(nil, false)

	a.Update(250)
	a.Pause()
	if !a.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	a.Update(500)
	assertWithin(t, "Rotation while paused", n.Rotation, 25, tweenTol)
	a.Resume()
	a.Update(250)
	assertWithin(t, "Rotation after resume", n.Rotation, 50, tweenTol)
}

func TestAnimatorDoneDetachesFromHost(t *testing.T) {
	h := &recordHost{}
	n := NewNode("n")
	n.AddToHost(h)
	a := n.Animate(TargetSelf, false).
		When(100, Props{KeyRotation: 10.0}).
		Start(nil, false)

	if !h.has(a) {
		t.Fatal("running animator not registered with host")
	}
	a.Update(100)
	if h.has(a) {
		t.Error("finished animator still registered with host")
	}
	if len(n.animators) != 0 {
		t.Errorf("len(n.animators) = %d, want 0", len(n.animators))
	}
}

func TestAnimatorDuringFires(t *testing.T) {
	n := NewNode("n")
	calls := 0
	a := n.Animate(TargetSelf, false).
		When(1000, Props{KeyRotation: 10.0}).
		Delay(100).
		During(func() { calls++ }).
		Start(nil, false)

	a.Update(50) // still inside the delay
	if calls != 0 {
		t.Fatalf("During fired %d times during delay, want 0", calls)
	}
	a.Update(100)
	a.Update(100)
	if calls != 2 {
		t.Errorf("During fired %d times, want 2", calls)
	}
}

func TestAnimatorEmptyClipRunsOut(t *testing.T) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, false)
	a.clipDuration = 300
	a.Start(nil, true)

	if a.Update(100) {
		t.Fatal("Update(100) = true, want false")
	}
	if !a.Update(200) {
		t.Fatal("Update(200) = false, want true")
	}
	if !a.Finished() {
		t.Error("Finished() = false, want true")
	}
}

// --- benchmarks ---

func BenchmarkAnimatorUpdate(b *testing.B) {
	n := NewNode("n")
	a := n.Animate(TargetSelf, true).
		When(0, Props{KeyPosition: Vec2{}}).
		When(1000, Props{KeyPosition: Vec2{X: 100, Y: 100}}).
		Start(nil, false)

	b.ReportAllocs()
	for b.Loop() {
		a.Update(0.5)
	}
}
