package safezone

import (
	"math/rand"
	"sort"
	"time"
)

// SafePositionQuery is a chainable builder, bound to one SafeZoneCalculator,
// that generates and ranks safe candidate positions. One builder produces
// one result via Execute(); it is not reusable across mutations of the
// calculator.
type SafePositionQuery struct {
	calculator *SafeZoneCalculator

	count        int
	searchCenter Vec2
	searchRadius float64
	time         Timestamp

	minDist float64

	hasTarget   bool
	target      Vec2
	hasMaxDist  bool
	maxDist     float64

	hasAngular   bool
	angularCtr   Vec2
	minAngle     float64

	hasOrderRef bool
	orderRef    Vec2

	rng *rand.Rand
}

// NearTarget sets a target point that scoring favors proximity to and,
// implicitly, that final ordering sorts ascending by (unless
// OrderByDistanceTo is called afterward, which overrides it). maxDist, if
// > 0, additionally filters out any candidate farther than maxDist from
// target.
func (q *SafePositionQuery) NearTarget(target Vec2, maxDist float64) *SafePositionQuery {
	q.hasTarget = true
	q.target = target
	if maxDist > 0 {
		q.hasMaxDist = true
		q.maxDist = maxDist
	}
	if !q.hasOrderRef {
		q.orderRef = target
	}
	return q
}

// MinDistanceBetween sets the minimum allowed distance between any two
// result points, clamped to a floor of 0.1.
func (q *SafePositionQuery) MinDistanceBetween(d float64) *SafePositionQuery {
	if d < 0.1 {
		d = 0.1
	}
	q.minDist = d
	return q
}

// WithMinAngle sets an angular constraint: every pair of selected points
// must subtend at least minAngle (radians) at centerPoint.
func (q *SafePositionQuery) WithMinAngle(centerPoint Vec2, minAngle float64) *SafePositionQuery {
	q.hasAngular = true
	q.angularCtr = centerPoint
	q.minAngle = minAngle
	return q
}

// OrderByDistanceTo sets (or overrides) the final-ordering reference
// point: results sort ascending by squared distance to ref.
func (q *SafePositionQuery) OrderByDistanceTo(ref Vec2) *SafePositionQuery {
	q.hasOrderRef = true
	q.orderRef = ref
	return q
}

// WithRNG injects a deterministic random source for Poisson-disk candidate
// generation. If never called, Execute seeds one from the current time.
func (q *SafePositionQuery) WithRNG(rng *rand.Rand) *SafePositionQuery {
	q.rng = rng
	return q
}

type scoredPoint struct {
	p     Vec2
	score float64
}

// Execute runs the fixed candidate-generation -> safety-filter -> scoring
// -> selection -> ordering pipeline and returns up to q.count points.
// Underfill is not an error: the result may be shorter than q.count.
func (q *SafePositionQuery) Execute() []Vec2 {
	if q.count <= 0 {
		return nil
	}
	minDist := q.minDist
	if minDist < 0.1 {
		minDist = 0.1
	}

	rng := q.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	arena := q.calculator.Arena()
	candidates := PoissonDiskSample(q.searchCenter, q.searchRadius, minDist, arena, rng)

	filtered := q.filterSafe(candidates)
	scored := q.score(filtered)
	selected := q.selectWithAngularConstraint(scored)
	return q.order(selected)
}

// filterSafe keeps candidates that are safe at q.time and, if a target max
// distance is set, within maxDist of the target.
func (q *SafePositionQuery) filterSafe(candidates []Vec2) []Vec2 {
	var out []Vec2
	for _, c := range candidates {
		if !q.calculator.IsSafe(c, q.time) {
			continue
		}
		if q.hasMaxDist && c.Distance(q.target) > q.maxDist {
			continue
		}
		out = append(out, c)
	}
	return out
}

// score computes each candidate's score (danger distance favored, target
// proximity penalized) and returns the list sorted descending by score.
func (q *SafePositionQuery) score(candidates []Vec2) []scoredPoint {
	scored := make([]scoredPoint, len(candidates))
	for i, c := range candidates {
		s := 10 * q.calculator.DistanceToNearestDanger(c, q.time)
		if q.hasTarget {
			s -= 5 * c.Distance(q.target)
		}
		scored[i] = scoredPoint{p: c, score: s}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

// selectWithAngularConstraint walks the descending-score list and accepts
// candidates into the result, honoring q.count and, if set, the angular
// separation constraint against every already-selected point.
func (q *SafePositionQuery) selectWithAngularConstraint(scored []scoredPoint) []Vec2 {
	var selected []Vec2
	for _, sp := range scored {
		if len(selected) >= q.count {
			break
		}
		if q.hasAngular && !q.satisfiesAngular(sp.p, selected) {
			continue
		}
		selected = append(selected, sp.p)
	}
	return selected
}

func (q *SafePositionQuery) satisfiesAngular(candidate Vec2, selected []Vec2) bool {
	cBearing := candidate.Sub(q.angularCtr)
	for _, s := range selected {
		sBearing := s.Sub(q.angularCtr)
		if AngleBetween(cBearing, sBearing) < q.minAngle {
			return false
		}
	}
	return true
}

// order applies the final-ordering stage: ascending by squared distance to
// the ordering reference if one is set (explicitly, or implicitly by
// NearTarget), else preserves selection (score-descending) order.
func (q *SafePositionQuery) order(selected []Vec2) []Vec2 {
	if !q.hasOrderRef && !q.hasTarget {
		return selected
	}
	ref := q.orderRef
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DistanceSq(ref) < selected[j].DistanceSq(ref)
	})
	return selected
}
