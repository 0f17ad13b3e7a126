package contour

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/kwv/aoeguard/safezone"
)

// Polylines stitches a segment list (typically the output of Build) into
// connected polylines and simplifies each with Douglas-Peucker at the
// given tolerance. Marching squares emits one independent segment per
// cell edge crossing, so adjacent segments that share an endpoint belong
// to the same contour line; this is a convenience view for renderers that
// want fewer, longer strokes instead of a flat segment soup. Segments
// that never connect to anything remain single-segment lines.
func Polylines(segments []Segment, tolerance float64) []orb.LineString {
	chains := stitch(segments)

	result := make([]orb.LineString, 0, len(chains))
	for _, chain := range chains {
		ls := make(orb.LineString, len(chain))
		for i, p := range chain {
			ls[i] = orb.Point{p.X, p.Z}
		}
		if tolerance > 0 && len(ls) > 2 {
			s := simplify.DouglasPeucker(tolerance).Simplify(ls.Clone())
			if reduced, ok := s.(orb.LineString); ok {
				ls = reduced
			}
		}
		result = append(result, ls)
	}
	return result
}

// endpointKey rounds a point to a stable key so nearly-identical
// marching-squares crossing points (computed independently by adjacent
// cells) are recognized as the same vertex.
func endpointKey(p safezone.Vec2) [2]int64 {
	const scale = 1e6
	return [2]int64{int64(p.X * scale), int64(p.Z * scale)}
}

// stitch greedily chains segments sharing an endpoint into polylines. It
// is not a full planar-graph Eulerian-path solver: each endpoint is
// consumed by at most one chain, which is sufficient for the simple,
// mostly-non-branching contours marching squares produces on a single SDF
// level set.
func stitch(segments []Segment) [][]safezone.Vec2 {
	edges := make([]*edge, len(segments))
	byEndpoint := make(map[[2]int64][]*edge)
	for i, s := range segments {
		e := &edge{a: s.A, b: s.B}
		edges[i] = e
		byEndpoint[endpointKey(e.a)] = append(byEndpoint[endpointKey(e.a)], e)
		byEndpoint[endpointKey(e.b)] = append(byEndpoint[endpointKey(e.b)], e)
	}

	var chains [][]safezone.Vec2
	for _, start := range edges {
		if start.used {
			continue
		}
		start.used = true
		chain := []safezone.Vec2{start.a, start.b}

		// Extend forward from the chain's current tail.
		for {
			tail := chain[len(chain)-1]
			next := firstUnusedAt(byEndpoint[endpointKey(tail)])
			if next == nil {
				break
			}
			next.used = true
			if endpointKey(next.a) == endpointKey(tail) {
				chain = append(chain, next.b)
			} else {
				chain = append(chain, next.a)
			}
		}

		chains = append(chains, chain)
	}
	return chains
}

func firstUnusedAt(candidates []*edge) *edge {
	for _, e := range candidates {
		if !e.used {
			return e
		}
	}
	return nil
}

// edge is one stitch candidate: a segment's two endpoints plus whether it
// has already been consumed into a chain.
type edge struct {
	a, b safezone.Vec2
	used bool
}
