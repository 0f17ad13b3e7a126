package safezone

import (
	"math"
	"testing"
)

func TestCircleArenaContainsAndDistance(t *testing.T) {
	a := NewCircleArena(Vec2{0, 0}, 10)
	if !a.Contains(Vec2{5, 0}) {
		t.Error("expected point inside circle arena")
	}
	if a.Contains(Vec2{15, 0}) {
		t.Error("expected point outside circle arena")
	}
	if got, want := a.DistanceToBorder(Vec2{5, 0}), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("DistanceToBorder = %v, want %v", got, want)
	}
	if got, want := a.DistanceToBorder(Vec2{15, 0}), -5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("DistanceToBorder = %v, want %v", got, want)
	}
}

func TestRectArenaZeroDirectionFallsBackToPlusX(t *testing.T) {
	a := NewRectArena(Vec2{0, 0}, Vec2{}, 5, 10)
	withX := NewRectArena(Vec2{0, 0}, Vec2{1, 0}, 5, 10)
	pts := []Vec2{{3, 2}, {20, 0}, {0, 20}, {-3, -2}}
	for _, p := range pts {
		if a.Contains(p) != withX.Contains(p) {
			t.Errorf("zero-direction rect arena should behave like +X at %v", p)
		}
	}
}

func TestRectArenaDistanceToBorderSigns(t *testing.T) {
	a := NewRectArena(Vec2{0, 0}, Vec2{1, 0}, 5, 10) // halfWidth=5 along Z, halfLen=10 along X
	inside := a.DistanceToBorder(Vec2{0, 0})
	if inside <= 0 {
		t.Errorf("expected positive distance for interior point, got %v", inside)
	}
	single := a.DistanceToBorder(Vec2{20, 0})
	if single >= 0 {
		t.Errorf("expected negative distance outside rect, got %v", single)
	}
	diagonal := a.DistanceToBorder(Vec2{20, 20})
	wantDiag := -math.Hypot(10, 15)
	if math.Abs(diagonal-wantDiag) > 1e-9 {
		t.Errorf("diagonal-outside distance = %v, want %v", diagonal, wantDiag)
	}
}
