package utils

import (
	"testing"
)

func TestPointerTracker_Tap(t *testing.T) {
	p := NewPointerTracker()

	if g := p.Step(true, 100, 100, false); g.Kind != GestureNone {
		t.Fatalf("press should not complete a gesture, got %v", g.Kind)
	}
	if g := p.Step(true, 103, 98, false); g.Kind != GestureNone {
		t.Fatalf("hold should not complete a gesture, got %v", g.Kind)
	}
	if p.Dragging() {
		t.Error("small movement should not count as dragging")
	}

	g := p.Step(false, 103, 98, false)
	if g.Kind != GestureTap {
		t.Fatalf("expected tap, got %v", g.Kind)
	}
	if g.StartX != 100 || g.StartY != 100 || g.EndX != 103 || g.EndY != 98 {
		t.Errorf("unexpected gesture %+v", g)
	}

	if g := p.Step(false, 0, 0, false); g.Kind != GestureNone {
		t.Errorf("idle frame should not complete a gesture, got %v", g.Kind)
	}
}

func TestPointerTracker_Drag(t *testing.T) {
	p := NewPointerTracker()
	p.Step(true, 10, 10, false)
	p.Step(true, 40, 12, false)

	if !p.Dragging() {
		t.Fatal("expected dragging after moving past the threshold")
	}
	sx, sy, x, y := p.DragRange()
	if sx != 10 || sy != 10 || x != 40 || y != 12 {
		t.Errorf("DragRange = %d,%d -> %d,%d", sx, sy, x, y)
	}

	// 回到起点附近仍然算拖拽
	p.Step(true, 12, 10, false)
	g := p.Step(false, 12, 10, false)
	if g.Kind != GestureDrag {
		t.Errorf("expected drag, got %v", g.Kind)
	}
}

func TestPointerTracker_TouchReleaseKeepsLastPosition(t *testing.T) {
	p := NewPointerTracker()
	p.Step(true, 50, 60, true)
	p.Step(true, 52, 61, true)

	g := p.Step(false, 0, 0, true)
	if g.Kind != GestureTap || !g.IsTouchInput {
		t.Fatalf("expected touch tap, got %+v", g)
	}
	if g.EndX != 52 || g.EndY != 61 {
		t.Errorf("touch release should use the last touch position, got %d,%d", g.EndX, g.EndY)
	}
}
