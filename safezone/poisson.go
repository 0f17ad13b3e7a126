package safezone

import (
	"math"
	"math/rand"
)

// maxPoissonAttempts is the number of candidate angles tried per active
// entry before it is retired from the active list.
const maxPoissonAttempts = 30

// poissonGrid is the uniform background grid used to reject candidates
// closer than minDist to any accepted point, without an O(n^2) scan.
type poissonGrid struct {
	cellSize float64
	origin   Vec2 // grid cell (0,0) covers [origin, origin+cellSize)
	cells    map[[2]int]Vec2
}

func newPoissonGrid(cellSize float64, origin Vec2) *poissonGrid {
	return &poissonGrid{cellSize: cellSize, origin: origin, cells: make(map[[2]int]Vec2)}
}

func (g *poissonGrid) cellOf(p Vec2) [2]int {
	return [2]int{
		int(math.Floor((p.X - g.origin.X) / g.cellSize)),
		int(math.Floor((p.Z - g.origin.Z) / g.cellSize)),
	}
}

func (g *poissonGrid) insert(p Vec2) {
	g.cells[g.cellOf(p)] = p
}

// farEnough reports whether p is at least minDist from every accepted
// point within the 5x5 neighborhood of p's grid cell.
func (g *poissonGrid) farEnough(p Vec2, minDist float64) bool {
	cell := g.cellOf(p)
	minDistSq := minDist * minDist
	for dz := -2; dz <= 2; dz++ {
		for dx := -2; dx <= 2; dx++ {
			neighbor, ok := g.cells[[2]int{cell[0] + dx, cell[1] + dz}]
			if !ok {
				continue
			}
			if p.DistanceSq(neighbor) < minDistSq {
				return false
			}
		}
	}
	return true
}

// PoissonDiskSample generates candidate points inside the disk of radius R
// around searchCenter, with no two points closer than minDist, optionally
// constrained to lie inside arena. rng must be supplied by the caller so
// tests (and deterministic replays) can inject a seeded source instead of
// reading global randomness.
func PoissonDiskSample(searchCenter Vec2, radius, minDist float64, arena *ArenaBounds, rng *rand.Rand) []Vec2 {
	if minDist < 0.1 {
		minDist = 0.1
	}
	if radius <= 0 {
		return nil
	}

	cellSize := minDist / math.Sqrt2
	grid := newPoissonGrid(cellSize, Vec2{searchCenter.X - radius, searchCenter.Z - radius})

	accept := func(p Vec2) bool {
		if p.DistanceSq(searchCenter) > radius*radius {
			return false
		}
		if arena != nil && !arena.Contains(p) {
			return false
		}
		return grid.farEnough(p, minDist)
	}

	var candidates []Vec2
	var active []Vec2

	if accept(searchCenter) {
		candidates = append(candidates, searchCenter)
		active = append(active, searchCenter)
		grid.insert(searchCenter)
	}

	for len(active) > 0 {
		idx := rng.Intn(len(active))
		base := active[idx]

		accepted := false
		for attempt := 0; attempt < maxPoissonAttempts; attempt++ {
			dist := minDist + rng.Float64()*minDist // in [minDist, 2*minDist]
			angle := rng.Float64() * Tau
			candidate := base.Add(DirFromAngle(angle).Scale(dist))

			if accept(candidate) {
				candidates = append(candidates, candidate)
				active = append(active, candidate)
				grid.insert(candidate)
				accepted = true
				break
			}
		}

		if !accepted {
			active = append(active[:idx], active[idx+1:]...)
		}
	}

	return candidates
}
