package safezone

// AOEKind tags which high-level attack-footprint shape an AOEShape wraps.
// This mirrors ShapeKind's tagged-variant approach at the UI-facing layer,
// since the same "one enum, inline dispatch" discipline keeps
// check()/distance() branch-predictable.
type AOEKind int

const (
	AOECircle AOEKind = iota
	AOECone
	AOEDonut
	AOERect
	AOECross
	AOETriCone // triangle variant often used for tri-shaped telegraphs
	AOECapsule
	AOEArcCapsule
	AOEDonutSector
)

// AOEShape is a high-level, UI-facing region: a named primitive plus
// orientation and an invert-forbidden flag. InvertForbidden treats the
// complement of the primitive as the danger zone (e.g. "everywhere except
// this safe lane").
type AOEShape struct {
	Kind             AOEKind
	InvertForbidden  bool
	Forward          Vec2 // orientation / center direction, as applicable
	R, RInner, ROuter float64
	HalfAngle        float64
	Front, Back, HalfWidth float64
	ArmLength        float64
	V0, V1, V2       Vec2 // triangle vertices relative to origin
	Length, Radius   float64
	OrbitCenter      Vec2
	AngularLength, TubeRadius float64
}

// Distance returns the ShapeDistance this AOEShape represents, positioned
// at origin, honoring InvertForbidden.
func (a AOEShape) Distance(origin Vec2) ShapeDistance {
	var sdf ShapeDistance
	switch a.Kind {
	case AOECircle:
		sdf = NewCircle(origin, a.R)
	case AOECone:
		sdf = NewCone(origin, a.R, a.Forward, a.HalfAngle)
	case AOEDonut:
		sdf = NewDonut(origin, a.RInner, a.ROuter)
	case AOERect:
		sdf = NewRect(origin, a.Forward, a.Front, a.Back, a.HalfWidth)
	case AOECross:
		sdf = NewCross(origin, a.Forward, a.ArmLength, a.HalfWidth)
	case AOETriCone:
		sdf = NewTriangle(origin, a.V0, a.V1, a.V2)
	case AOECapsule:
		sdf = NewCapsule(origin, a.Forward, a.Length, a.Radius)
	case AOEArcCapsule:
		sdf = NewArcCapsule(origin, a.OrbitCenter, a.AngularLength, a.TubeRadius)
	case AOEDonutSector:
		sdf = NewDonutSector(origin, a.RInner, a.ROuter, a.Forward, a.HalfAngle)
	default:
		sdf = NewCircle(origin, 0)
	}
	if a.InvertForbidden {
		sdf = sdf.Inverted()
	}
	return sdf
}

// Check reports whether p is inside this AOEShape positioned at origin.
func (a AOEShape) Check(p, origin Vec2) bool {
	return a.Distance(origin).Contains(p)
}

// Convenience constructors, one per AOEKind.

func NewAOECircle(r float64, invert bool) AOEShape {
	return AOEShape{Kind: AOECircle, R: r, InvertForbidden: invert}
}

func NewAOECone(r float64, centerDir Vec2, halfAngle float64, invert bool) AOEShape {
	return AOEShape{Kind: AOECone, R: r, Forward: centerDir, HalfAngle: halfAngle, InvertForbidden: invert}
}

func NewAOEDonut(rInner, rOuter float64, invert bool) AOEShape {
	return AOEShape{Kind: AOEDonut, RInner: rInner, ROuter: rOuter, InvertForbidden: invert}
}

func NewAOERect(forward Vec2, front, back, halfWidth float64, invert bool) AOEShape {
	return AOEShape{Kind: AOERect, Forward: forward, Front: front, Back: back, HalfWidth: halfWidth, InvertForbidden: invert}
}

func NewAOECross(forward Vec2, armLength, halfWidth float64, invert bool) AOEShape {
	return AOEShape{Kind: AOECross, Forward: forward, ArmLength: armLength, HalfWidth: halfWidth, InvertForbidden: invert}
}

func NewAOETriCone(v0, v1, v2 Vec2, invert bool) AOEShape {
	return AOEShape{Kind: AOETriCone, V0: v0, V1: v1, V2: v2, InvertForbidden: invert}
}

func NewAOECapsule(forward Vec2, length, radius float64, invert bool) AOEShape {
	return AOEShape{Kind: AOECapsule, Forward: forward, Length: length, Radius: radius, InvertForbidden: invert}
}

func NewAOEArcCapsule(orbitCenter Vec2, angularLength, tubeRadius float64, invert bool) AOEShape {
	return AOEShape{Kind: AOEArcCapsule, OrbitCenter: orbitCenter, AngularLength: angularLength, TubeRadius: tubeRadius, InvertForbidden: invert}
}

func NewAOEDonutSector(rInner, rOuter float64, centerDir Vec2, halfAngle float64, invert bool) AOEShape {
	return AOEShape{Kind: AOEDonutSector, RInner: rInner, ROuter: rOuter, Forward: centerDir, HalfAngle: halfAngle, InvertForbidden: invert}
}
