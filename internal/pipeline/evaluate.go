// Package pipeline turns parsed plans into comparison series and summaries.
package pipeline

import (
	"sort"

	"github.com/kochb/hicompare/internal/model"
)

// DefaultSamples is the point budget for a cost curve. The curves are
// piecewise linear, so a modest sample count loses nothing visually.
const DefaultSamples = 80

// EvaluateRange computes one cost series per plan over bills 0..maxBills.
// samples caps the number of points; the full integer range is used when
// it is smaller than the cap.
func EvaluateRange(plans []model.Plan, maxBills float64, samples int, opts model.EvalOptions) []model.PlanSeries {
	if maxBills < 0 {
		maxBills = 0
	}
	if samples < 2 {
		samples = 2
	}
	if n := int(maxBills) + 1; n < samples {
		samples = n
	}
	if samples < 2 {
		samples = 2
	}

	series := make([]model.PlanSeries, 0, len(plans))
	for _, p := range plans {
		points := make([]model.CostPoint, samples)
		for i := 0; i < samples; i++ {
			bills := maxBills * float64(i) / float64(samples-1)
			points[i] = model.CostPoint{
				Bills: bills,
				Cost:  p.ActualCost(bills, opts.Months, opts.Visits, opts.TaxBracket),
			}
		}
		series = append(series, model.PlanSeries{Plan: p, Points: points})
	}
	return series
}

// ChartMax picks a bill-range ceiling wide enough that every plan's
// curve reaches its out-of-pocket cap, with some room past the knee.
func ChartMax(plans []model.Plan, bills float64, opts model.EvalOptions) float64 {
	maxBills := bills * 2
	for _, p := range plans {
		copays := float64(opts.Visits) * p.Copay
		knee := p.Deductible + copays
		if p.Coinsurance > 0 {
			knee += (p.OutOfPocketMax - copays - p.Deductible) / p.Coinsurance
		}
		if knee*1.2 > maxBills {
			maxBills = knee * 1.2
		}
	}
	if maxBills < 10000 {
		maxBills = 10000
	}
	return maxBills
}

// Cheapest returns the plan with the lowest actual cost at the given
// bill total, along with that cost. Ties keep the earlier plan.
func Cheapest(plans []model.Plan, bills float64, opts model.EvalOptions) (model.Plan, float64) {
	var best model.Plan
	bestCost := 0.0
	for i, p := range plans {
		cost := p.ActualCost(bills, opts.Months, opts.Visits, opts.TaxBracket)
		if i == 0 || cost < bestCost {
			best = p
			bestCost = cost
		}
	}
	return best, bestCost
}

// RankedPlan pairs a plan with its cost at one bill level.
type RankedPlan struct {
	Plan model.Plan
	Cost float64
}

// RankAt returns the plans sorted by actual cost at the given bill total,
// cheapest first. Ties keep the input order.
func RankAt(plans []model.Plan, bills float64, opts model.EvalOptions) []RankedPlan {
	ranked := make([]RankedPlan, 0, len(plans))
	for _, p := range plans {
		ranked = append(ranked, RankedPlan{
			Plan: p,
			Cost: p.ActualCost(bills, opts.Months, opts.Visits, opts.TaxBracket),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Cost < ranked[j].Cost
	})
	return ranked
}

// Breakdown splits a plan's cost into components at one bill level.
func Breakdown(p model.Plan, bills float64, opts model.EvalOptions) model.CostBreakdown {
	b := model.CostBreakdown{
		Plan:        p,
		Bills:       bills,
		Premium:     p.Premium(opts.Months),
		Copays:      float64(opts.Visits) * p.Copay,
		EmployerHSA: p.EmployerHSAContribution,
		TaxSavings:  p.TaxSavings(opts.TaxBracket),
		Total:       p.ActualCost(bills, opts.Months, opts.Visits, opts.TaxBracket),
	}

	if b.Copays+bills < p.Deductible {
		b.DeductiblePaid = bills
		return b
	}

	b.DeductiblePaid = p.Deductible
	b.CoinsurancePaid = (bills - b.Copays - p.Deductible) * p.Coinsurance
	raw := b.Copays + b.DeductiblePaid + b.CoinsurancePaid
	if raw > p.OutOfPocketMax {
		b.CappedByOOPMax = true
	}
	return b
}
