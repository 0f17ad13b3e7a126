package safezone

import (
	"math"
	"testing"
)

func TestAOEShapeCheckMatchesDistance(t *testing.T) {
	origin := Vec2{5, 5}
	shapes := []AOEShape{
		NewAOECircle(10, false),
		NewAOECircle(10, true),
		NewAOEDonut(3, 8, false),
		NewAOERect(Vec2{0, 1}, 10, 2, 3, false),
		NewAOECross(Vec2{0, 1}, 8, 1, false),
	}
	points := []Vec2{{5, 5}, {10, 5}, {5, 20}, {-5, -5}}
	for _, s := range shapes {
		for _, p := range points {
			check := s.Check(p, origin)
			distIn := s.Distance(origin).Contains(p)
			if check != distIn {
				t.Errorf("shape %+v at %v: Check()=%v Distance().Contains()=%v", s.Kind, p, check, distIn)
			}
		}
	}
}

func TestAOEShapeRotationInvariantOverFullTurn(t *testing.T) {
	// A rect AOE rotated by a full 2*Pi turn should give identical contains
	// results, to within Epsilon, at every sampled point. (3,4) lies on the
	// rect's side edge, where DirFromAngle(Tau)'s rounding moves the distance
	// by ~1e-15.
	origin := Vec2{0, 0}
	basePoints := []Vec2{{3, 4}, {-2, 1}, {0, 8}, {6, 0}, {-5, -5}}
	containsWithinEpsilon := func(s AOEShape, p Vec2) bool {
		return s.Distance(origin).Distance(p) <= Epsilon
	}

	for _, angle := range []float64{0, Tau} {
		fwd := DirFromAngle(angle)
		shape := NewAOERect(fwd, 10, 2, 3, false)
		baseFwd := DirFromAngle(0)
		baseShape := NewAOERect(baseFwd, 10, 2, 3, false)
		for _, p := range basePoints {
			if got, want := containsWithinEpsilon(shape, p), containsWithinEpsilon(baseShape, p); got != want {
				t.Errorf("rotation by %v changed Check(%v): got %v want %v", angle, p, got, want)
			}
		}
	}
}

func TestAOEInvertForbiddenFlipsSign(t *testing.T) {
	origin := Vec2{0, 0}
	s := NewAOECircle(10, false)
	inv := NewAOECircle(10, true)
	for _, p := range []Vec2{{5, 0}, {15, 0}} {
		d1 := s.Distance(origin).Distance(p)
		d2 := inv.Distance(origin).Distance(p)
		if math.Abs(d1+d2) > 1e-9 {
			t.Errorf("inverted AOE shape distance should negate base distance at %v: %v vs %v", p, d1, d2)
		}
	}
}
