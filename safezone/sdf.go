package safezone

import "math"

// ShapeKind tags the variant a ShapeDistance holds. A tagged sum type is
// used here instead of a polymorphic shape hierarchy so Distance dispatches
// with a single inline switch rather than a virtual call per primitive or
// child shape — this keeps the query engine's hot scoring loop
// branch-predictable.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindRect
	KindCone
	KindDonut
	KindDonutSector
	KindCross
	KindTriangle
	KindCapsule
	KindArcCapsule
	KindUnion
	KindIntersection
)

// ShapeDistance is an analytical signed-distance field: negative inside,
// zero on the boundary, positive outside. Only the fields
// relevant to Kind are populated; combinators (KindUnion, KindIntersection)
// use Children and ignore the primitive parameters.
type ShapeDistance struct {
	Kind    ShapeKind
	Invert  bool
	Origin  Vec2
	Forward Vec2 // also center-dir for Cone / DonutSector

	R, RInner, ROuter      float64
	Front, Back, HalfWidth float64
	HalfAngle              float64
	ArmLength              float64

	V0, V1, V2 Vec2 // triangle vertices, relative to Origin

	Length, Radius float64 // capsule

	OrbitCenter               Vec2
	AngularLength, TubeRadius float64

	Children []ShapeDistance
}

// Distance evaluates the signed distance field at p.
func (s ShapeDistance) Distance(p Vec2) float64 {
	raw := s.raw(p)
	if s.Invert {
		return -raw
	}
	return raw
}

// Contains reports whether p lies inside or on the boundary of s.
func (s ShapeDistance) Contains(p Vec2) bool {
	return s.Distance(p) <= 0
}

// Inverted returns a copy of s with the sign of its distance field flipped.
func (s ShapeDistance) Inverted() ShapeDistance {
	s.Invert = !s.Invert
	return s
}

func (s ShapeDistance) raw(p Vec2) float64 {
	switch s.Kind {
	case KindCircle:
		return p.Distance(s.Origin) - s.R
	case KindRect:
		return rectSDF(p, s.Origin, s.Forward, s.Front, s.Back, s.HalfWidth)
	case KindCone:
		return coneSDF(p, s.Origin, s.R, s.Forward, s.HalfAngle)
	case KindDonut:
		d := p.Distance(s.Origin)
		return math.Max(s.RInner-d, d-s.ROuter)
	case KindDonutSector:
		donut := math.Max(s.RInner-p.Distance(s.Origin), p.Distance(s.Origin)-s.ROuter)
		cone := coneSDF(p, s.Origin, s.ROuter, s.Forward, s.HalfAngle)
		return math.Max(donut, cone)
	case KindCross:
		ortho := s.Forward.Left()
		r1 := rectSDF(p, s.Origin, s.Forward, s.ArmLength, s.ArmLength, s.HalfWidth)
		r2 := rectSDF(p, s.Origin, ortho, s.ArmLength, s.ArmLength, s.HalfWidth)
		return math.Min(r1, r2)
	case KindTriangle:
		return triangleSDF(p, s.Origin, s.V0, s.V1, s.V2)
	case KindCapsule:
		return capsuleSDF(p, s.Origin, s.Forward, s.Length, s.Radius)
	case KindArcCapsule:
		return arcCapsuleSDF(p, s.Origin, s.OrbitCenter, s.AngularLength, s.TubeRadius)
	case KindUnion:
		return unionSDF(p, s.Children)
	case KindIntersection:
		return intersectionSDF(p, s.Children)
	default:
		return math.Inf(1)
	}
}

func unionSDF(p Vec2, children []ShapeDistance) float64 {
	if len(children) == 0 {
		return math.Inf(1)
	}
	min := children[0].Distance(p)
	for _, c := range children[1:] {
		if d := c.Distance(p); d < min {
			min = d
		}
	}
	return min
}

func intersectionSDF(p Vec2, children []ShapeDistance) float64 {
	if len(children) == 0 {
		return math.Inf(1)
	}
	max := children[0].Distance(p)
	for _, c := range children[1:] {
		if d := c.Distance(p); d > max {
			max = d
		}
	}
	return max
}

// rectSDF returns the signed distance to the oriented box with half-extents
// (front+back)/2 along forward and halfWidth along forward.Left(), centered
// between front and back.
func rectSDF(p, origin, forward Vec2, front, back, halfWidth float64) float64 {
	fwd := forward.Normalize()
	if fwd == (Vec2{}) {
		fwd = Vec2{0, 1}
	}
	ortho := fwd.Left()

	center := (front - back) / 2
	halfLen := (front + back) / 2

	offset := p.Sub(origin)
	along := offset.Dot(fwd) - center
	across := offset.Dot(ortho)

	qx := math.Abs(along) - halfLen
	qz := math.Abs(across) - halfWidth

	outsideX := math.Max(qx, 0)
	outsideZ := math.Max(qz, 0)
	outsideDist := math.Hypot(outsideX, outsideZ)
	insideDist := math.Min(math.Max(qx, qz), 0)
	return outsideDist + insideDist
}

// coneSDF returns the signed distance to the circular sector of radius r
// centered on centerDir with half-angle halfAngle. halfAngle >= Pi
// collapses to a plain circle. This is the intersection (max) of a disk
// SDF and an angular-wedge SDF, in the closed form standard for 2D "pie"
// shapes: fold the local x-coordinate symmetric about centerDir, then take
// max(distanceToArc, distanceToEdge * sign(insideWedge)).
func coneSDF(p, origin Vec2, r float64, centerDir Vec2, halfAngle float64) float64 {
	if halfAngle >= math.Pi {
		return p.Distance(origin) - r
	}
	cd := centerDir.Normalize()
	if cd == (Vec2{}) {
		cd = Vec2{0, 1}
	}
	offset := p.Sub(origin)

	// Local frame: cz along centerDir, cx along centerDir.Right(), folded
	// to the positive half (the wedge is symmetric about centerDir).
	cx := math.Abs(offset.Dot(cd.Right()))
	cz := offset.Dot(cd)
	q := Vec2{cx, cz}

	sinA := math.Sin(halfAngle)
	cosA := math.Cos(halfAngle)
	edgeDir := Vec2{sinA, cosA}

	distArc := q.Length() - r

	along := clamp(q.Dot(edgeDir), 0, r)
	closest := edgeDir.Scale(along)
	distEdge := q.Distance(closest)

	sign := 1.0
	if q.Cross(edgeDir) < 0 {
		sign = -1.0
	}
	return math.Max(distArc, distEdge*sign)
}

// triangleSDF returns the signed distance to the triangle with vertices
// origin+v0, origin+v1, origin+v2.
func triangleSDF(p, origin, v0, v1, v2 Vec2) float64 {
	a := origin.Add(v0)
	b := origin.Add(v1)
	c := origin.Add(v2)

	d := math.Min(math.Min(
		segmentDistSigned(p, a, b),
		segmentDistSigned(p, b, c)),
		segmentDistSigned(p, c, a))

	inside := InTri(p, origin, v0, v1, v2)
	if inside {
		return -d
	}
	return d
}

// segmentDistSigned returns the unsigned distance from p to segment [a,b];
// the name reflects that callers combine it with an outside inside test to
// get the signed triangle distance.
func segmentDistSigned(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}

// capsuleSDF returns the distance from p to the segment starting at origin
// running `length` along forward, minus radius.
func capsuleSDF(p, origin, forward Vec2, length, radius float64) float64 {
	fwd := forward.Normalize()
	if fwd == (Vec2{}) {
		return p.Distance(origin) - radius
	}
	offset := p.Sub(origin)
	t := clamp(offset.Dot(fwd), 0, length)
	closest := origin.Add(fwd.Scale(t))
	return p.Distance(closest) - radius
}

// arcCapsuleSDF returns the signed distance to the swept tube of tubeRadius
// around the circular arc running from start around orbitCenter through
// angularLength radians. When the angular projection of p lies inside the
// sweep, distance is to the arc curve minus tubeRadius; otherwise it is the
// distance to the nearer hemisphere endcap, minus tubeRadius.
func arcCapsuleSDF(p, start, orbitCenter Vec2, angularLength, tubeRadius float64) float64 {
	r := start.Distance(orbitCenter)
	if r == 0 {
		return p.Distance(orbitCenter) - tubeRadius
	}
	_, inSweep := arcSweepAngle(p, orbitCenter, start, angularLength)
	if inSweep {
		return math.Abs(p.Distance(orbitCenter)-r) - tubeRadius
	}
	sign := 1.0
	if angularLength < 0 {
		sign = -1.0
	}
	endAngle := start.Sub(orbitCenter).AngleTo() + sign*math.Abs(angularLength)
	end := orbitCenter.Add(DirFromAngle(endAngle).Scale(r))
	return math.Min(p.Distance(start), p.Distance(end)) - tubeRadius
}

// Constructors for each primitive. Each returns the non-inverted variant;
// call Inverted() for the complement.

func NewCircle(origin Vec2, r float64) ShapeDistance {
	return ShapeDistance{Kind: KindCircle, Origin: origin, R: r}
}

func NewRect(origin, forward Vec2, front, back, halfWidth float64) ShapeDistance {
	return ShapeDistance{Kind: KindRect, Origin: origin, Forward: forward, Front: front, Back: back, HalfWidth: halfWidth}
}

func NewCone(origin Vec2, r float64, centerDir Vec2, halfAngle float64) ShapeDistance {
	return ShapeDistance{Kind: KindCone, Origin: origin, R: r, Forward: centerDir, HalfAngle: halfAngle}
}

func NewDonut(origin Vec2, rInner, rOuter float64) ShapeDistance {
	return ShapeDistance{Kind: KindDonut, Origin: origin, RInner: rInner, ROuter: rOuter}
}

func NewDonutSector(origin Vec2, rInner, rOuter float64, centerDir Vec2, halfAngle float64) ShapeDistance {
	return ShapeDistance{Kind: KindDonutSector, Origin: origin, RInner: rInner, ROuter: rOuter, Forward: centerDir, HalfAngle: halfAngle}
}

func NewCross(origin, forward Vec2, armLength, halfWidth float64) ShapeDistance {
	return ShapeDistance{Kind: KindCross, Origin: origin, Forward: forward, ArmLength: armLength, HalfWidth: halfWidth}
}

func NewTriangle(origin, v0, v1, v2 Vec2) ShapeDistance {
	return ShapeDistance{Kind: KindTriangle, Origin: origin, V0: v0, V1: v1, V2: v2}
}

func NewCapsule(origin, forward Vec2, length, radius float64) ShapeDistance {
	return ShapeDistance{Kind: KindCapsule, Origin: origin, Forward: forward, Length: length, Radius: radius}
}

func NewArcCapsule(start, orbitCenter Vec2, angularLength, tubeRadius float64) ShapeDistance {
	return ShapeDistance{Kind: KindArcCapsule, Origin: start, OrbitCenter: orbitCenter, AngularLength: angularLength, TubeRadius: tubeRadius}
}

// Union returns the signed distance field of the union of children: the
// minimum distance across all children.
func Union(children ...ShapeDistance) ShapeDistance {
	return ShapeDistance{Kind: KindUnion, Children: children}
}

// Intersection returns the signed distance field of the intersection of
// children: the maximum distance across all children.
func Intersection(children ...ShapeDistance) ShapeDistance {
	return ShapeDistance{Kind: KindIntersection, Children: children}
}

// InvertedUnion returns Union(children).Inverted(). It is algebraically
// equivalent to Intersection of each child's Inverted() (see sdf_test.go):
// both reduce to -min(d_i) = max(-d_i).
func InvertedUnion(children ...ShapeDistance) ShapeDistance {
	return Union(children...).Inverted()
}

// InvertedIntersection returns Intersection(children).Inverted(), algebraically
// equivalent to Union of each child's Inverted().
func InvertedIntersection(children ...ShapeDistance) ShapeDistance {
	return Intersection(children...).Inverted()
}

// RowIntersectsShape is a cheap fast-reject for a row query: does the
// segment from start running along dx (for its full length), thickened by
// width/2 plus cushion, plausibly intersect s? Primitives with an obvious
// bounding radius (Circle, Donut, Cone, DonutSector) reject cheaply by
// comparing to the row's bounding capsule; all other kinds default to true
// (no fast reject).
func RowIntersectsShape(s ShapeDistance, start, dx Vec2, width, cushion float64) bool {
	switch s.Kind {
	case KindCircle, KindCone:
		return capsuleSDF(s.Origin, start, dx.Normalize(), dx.Length(), s.R+width/2+cushion) <= 0
	case KindDonut, KindDonutSector:
		return capsuleSDF(s.Origin, start, dx.Normalize(), dx.Length(), s.ROuter+width/2+cushion) <= 0
	default:
		return true
	}
}
