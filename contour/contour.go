// Package contour extracts iso-contour polylines from an arbitrary 2D
// signed-distance field by marching squares, for overlay rendering. The
// builder never reads the field's internal representation; it only calls
// Distance at lattice points, so any safezone.ShapeDistance (or any other
// SDF value satisfying the same shape) can be contoured.
package contour

import (
	"math"

	"github.com/kwv/aoeguard/safezone"
)

// SDF is the minimal surface a field must expose to be contoured.
// safezone.ShapeDistance satisfies it.
type SDF interface {
	Distance(p safezone.Vec2) float64
}

// Color is a renderer-agnostic RGBA color in [0,1] per channel, carried
// through to the overlay package without this package depending on it.
type Color struct {
	R, G, B, A float64
}

// Segment is one emitted edge of the iso-contour, in input-space
// coordinates at the requested height, with the style it should be drawn
// in. The builder never holds a reference to a renderer.
type Segment struct {
	A, B      safezone.Vec2
	Height    float64
	Color     Color
	Thickness float64
}

// Builder holds the fixed style applied to every contour it builds, so
// repeated calls against different fields don't need to re-specify color
// and thickness every time.
type Builder struct {
	Height    float64
	Color     Color
	Thickness float64
}

// NewBuilder returns a Builder with the given fixed output style.
func NewBuilder(height float64, color Color, thickness float64) Builder {
	return Builder{Height: height, Color: color, Thickness: thickness}
}

// corner is one lattice sample: its position and field value there.
type corner struct {
	p safezone.Vec2
	d float64
}

// Build runs marching squares over the square lattice covering
// [cx-r,cx+r] x [cz-r,cz+r] with spacing step, and returns the segments
// approximating field(p) = 0. Non-positive r or step returns an empty
// (nil) list.
func (b Builder) Build(field SDF, center safezone.Vec2, r, step float64) []Segment {
	if r <= 0 || step <= 0 {
		return nil
	}

	var segments []Segment

	sample := func(x, z float64) corner {
		p := safezone.Vec2{X: x, Z: z}
		return corner{p: p, d: field.Distance(p)}
	}

	for z := center.Z - r; z < center.Z+r; z += step {
		for x := center.X - r; x < center.X+r; x += step {
			a := sample(x, z)
			bb := sample(x+step, z)
			c := sample(x+step, z+step)
			d := sample(x, z+step)

			segments = append(segments, b.cellSegments(a, bb, c, d)...)
		}
	}

	return segments
}

// cellSegments returns the 0, 1, or 2 segments for one marching-squares
// cell with corners A,B,C,D ordered (x,z), (x+s,z), (x+s,z+s), (x,z+s).
func (b Builder) cellSegments(a, bb, c, d corner) []Segment {
	mask := 0
	if a.d <= 0 {
		mask |= 1
	}
	if bb.d <= 0 {
		mask |= 2
	}
	if c.d <= 0 {
		mask |= 4
	}
	if d.d <= 0 {
		mask |= 8
	}
	if mask == 0 || mask == 15 {
		return nil
	}

	ab := b.lerpEdge(a, bb) // top edge: A-B
	bc := b.lerpEdge(bb, c) // right edge: B-C
	cd := b.lerpEdge(c, d)  // bottom edge: C-D
	da := b.lerpEdge(d, a)  // left edge: D-A

	seg := func(p, q safezone.Vec2) Segment {
		return Segment{A: p, B: q, Height: b.Height, Color: b.Color, Thickness: b.Thickness}
	}

	switch mask {
	case 1, 14:
		return []Segment{seg(da, ab)}
	case 2, 13:
		return []Segment{seg(ab, bc)}
	case 3, 12:
		return []Segment{seg(da, bc)}
	case 4, 11:
		return []Segment{seg(bc, cd)}
	case 6, 9:
		return []Segment{seg(ab, cd)}
	case 7, 8:
		return []Segment{seg(da, cd)}
	case 5:
		// saddle: treated as two separate segments, no sub-sampling; reduce
		// step if the two possible connectivity choices matter to a caller.
		return []Segment{seg(da, ab), seg(bc, cd)}
	case 10:
		return []Segment{seg(ab, bc), seg(cd, da)}
	default:
		return nil
	}
}

// lerpEdge linearly interpolates the zero crossing between corners p and
// q, clamping t to [0,1] and falling back to the midpoint on NaN/Inf.
func (b Builder) lerpEdge(p, q corner) safezone.Vec2 {
	t := p.d / (p.d - q.d)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0.5
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return safezone.Vec2{
		X: p.p.X + (q.p.X-p.p.X)*t,
		Z: p.p.Z + (q.p.Z-p.p.Z)*t,
	}
}
