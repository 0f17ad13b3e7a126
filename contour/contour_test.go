package contour

import (
	"math"
	"testing"

	"github.com/kwv/aoeguard/safezone"
)

func TestBuildDegenerateInputsReturnEmpty(t *testing.T) {
	circle := safezone.NewCircle(safezone.Vec2{}, 5)
	b := NewBuilder(0, Color{}, 1)

	if got := b.Build(circle, safezone.Vec2{}, 0, 1); got != nil {
		t.Errorf("expected nil for non-positive radius, got %v", got)
	}
	if got := b.Build(circle, safezone.Vec2{}, 10, 0); got != nil {
		t.Errorf("expected nil for non-positive step, got %v", got)
	}
	if got := b.Build(circle, safezone.Vec2{}, 10, -1); got != nil {
		t.Errorf("expected nil for negative step, got %v", got)
	}
}

func TestBuildCircleEveryCellStraddlesZero(t *testing.T) {
	circle := safezone.NewCircle(safezone.Vec2{0, 0}, 10)
	b := NewBuilder(0, Color{1, 0, 0, 1}, 2)

	segs := b.Build(circle, safezone.Vec2{0, 0}, 15, 1)
	if len(segs) == 0 {
		t.Fatal("expected a non-empty contour for a circle")
	}

	for _, s := range segs {
		da := circle.Distance(s.A)
		db := circle.Distance(s.B)
		if math.Abs(da) > 1.5 || math.Abs(db) > 1.5 {
			t.Errorf("segment endpoint far from the zero level set: dA=%v dB=%v", da, db)
		}
		if s.Height != 0 {
			t.Errorf("expected segment height to match builder height, got %v", s.Height)
		}
	}
}

func TestBuildAllInsideOrAllOutsideProducesNoSegments(t *testing.T) {
	circle := safezone.NewCircle(safezone.Vec2{0, 0}, 100)
	b := NewBuilder(0, Color{}, 1)

	// Small region entirely inside the circle: no boundary crossings.
	segs := b.Build(circle, safezone.Vec2{0, 0}, 5, 1)
	if len(segs) != 0 {
		t.Errorf("expected no segments entirely inside the field, got %d", len(segs))
	}

	// Region far outside the circle: all cells all-outside.
	segs = b.Build(circle, safezone.Vec2{1000, 1000}, 5, 1)
	if len(segs) != 0 {
		t.Errorf("expected no segments entirely outside the field, got %d", len(segs))
	}
}

func TestLerpEdgeClampsAndFallsBackOnDegenerate(t *testing.T) {
	b := NewBuilder(0, Color{}, 1)

	// Equal, opposite-signed small values: ordinary interpolation.
	p := corner{p: safezone.Vec2{0, 0}, d: 1}
	q := corner{p: safezone.Vec2{1, 0}, d: -1}
	mid := b.lerpEdge(p, q)
	if math.Abs(mid.X-0.5) > 1e-9 {
		t.Errorf("expected midpoint crossing at x=0.5, got %v", mid.X)
	}

	// Identical distances (division by zero -> +Inf) falls back to 0.5.
	same := corner{p: safezone.Vec2{0, 0}, d: 3}
	sameQ := corner{p: safezone.Vec2{1, 0}, d: 3}
	fallback := b.lerpEdge(same, sameQ)
	if math.Abs(fallback.X-0.5) > 1e-9 {
		t.Errorf("expected non-finite fallback to midpoint, got %v", fallback.X)
	}
}

func TestCellSegmentsSaddleCasesEmitTwoSegments(t *testing.T) {
	b := NewBuilder(0, Color{}, 1)

	// mask=5: A and C inside (negative), B and D outside (positive).
	a := corner{p: safezone.Vec2{0, 0}, d: -1}
	bb := corner{p: safezone.Vec2{1, 0}, d: 1}
	c := corner{p: safezone.Vec2{1, 1}, d: -1}
	d := corner{p: safezone.Vec2{0, 1}, d: 1}

	segs := b.cellSegments(a, bb, c, d)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments for saddle case 5, got %d", len(segs))
	}
}
