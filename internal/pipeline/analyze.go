package pipeline

import "github.com/kochb/hicompare/internal/model"

// Crossovers finds the bill levels where the cheapest plan changes.
// Series must share the same sample grid (as built by EvaluateRange).
// The crossover position is interpolated between the samples where the
// two curves actually intersect; the curves are piecewise linear, so the
// result is exact away from formula breakpoints.
func Crossovers(series []model.PlanSeries) []model.Crossover {
	if len(series) < 2 || len(series[0].Points) == 0 {
		return nil
	}

	n := len(series[0].Points)
	var crossovers []model.Crossover

	prev := cheapestAt(series, 0)
	for i := 1; i < n; i++ {
		cur := cheapestAt(series, i)
		if cur == prev {
			continue
		}

		from := series[prev]
		to := series[cur]
		crossovers = append(crossovers, model.Crossover{
			Bills: intersect(
				from.Points[i-1], from.Points[i],
				to.Points[i-1], to.Points[i],
			),
			From: from.Plan.Name,
			To:   to.Plan.Name,
		})
		prev = cur
	}

	return crossovers
}

// cheapestAt returns the index of the series with the lowest cost at
// sample i. Ties keep the earlier series.
func cheapestAt(series []model.PlanSeries, i int) int {
	best := 0
	for s := 1; s < len(series); s++ {
		if series[s].Points[i].Cost < series[best].Points[i].Cost {
			best = s
		}
	}
	return best
}

// intersect solves where two line segments over the same x interval
// cross, returning the x of the intersection clamped to the interval.
func intersect(a0, a1, b0, b1 model.CostPoint) float64 {
	x0, x1 := a0.Bills, a1.Bills
	da := a1.Cost - a0.Cost
	db := b1.Cost - b0.Cost

	denom := da - db
	if denom == 0 {
		return x0 // parallel; the flip came from a tie break
	}

	t := (b0.Cost - a0.Cost) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return x0 + t*(x1-x0)
}
