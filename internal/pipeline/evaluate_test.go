package pipeline

import (
	"math"
	"testing"

	"github.com/kochb/hicompare/internal/model"
)

var opts12 = model.EvalOptions{Months: 12}

func TestEvaluateRange_GridAndValues(t *testing.T) {
	plans := []model.Plan{
		{Name: "A", MonthlyPremium: 400, Deductible: 2000, Coinsurance: 0.2, OutOfPocketMax: 8000},
		{Name: "B", MonthlyPremium: 300, Deductible: 3000, Coinsurance: 0.2, OutOfPocketMax: 10000},
	}

	series := EvaluateRange(plans, 10000, 11, opts12)
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}

	for _, s := range series {
		if len(s.Points) != 11 {
			t.Fatalf("%s: got %d points, want 11", s.Plan.Name, len(s.Points))
		}
		if s.Points[0].Bills != 0 || s.Points[10].Bills != 10000 {
			t.Errorf("%s: grid spans [%.0f, %.0f], want [0, 10000]",
				s.Plan.Name, s.Points[0].Bills, s.Points[10].Bills)
		}
		for _, pt := range s.Points {
			want := s.Plan.ActualCost(pt.Bills, 12, 0, 0)
			if math.Abs(pt.Cost-want) > 1e-9 {
				t.Errorf("%s at %.0f: cost %.2f, want %.2f", s.Plan.Name, pt.Bills, pt.Cost, want)
			}
		}
	}
}

func TestEvaluateRange_SmallRangeUsesIntegerGrid(t *testing.T) {
	series := EvaluateRange([]model.Plan{{Name: "A"}}, 5, DefaultSamples, opts12)
	if got := len(series[0].Points); got != 6 {
		t.Errorf("got %d points for bills 0..5, want 6", got)
	}
}

func TestEvaluateRange_ZeroRange(t *testing.T) {
	series := EvaluateRange([]model.Plan{{Name: "A", MonthlyPremium: 100}}, 0, DefaultSamples, opts12)
	pts := series[0].Points
	if len(pts) < 2 {
		t.Fatalf("got %d points, want at least 2", len(pts))
	}
	for _, pt := range pts {
		if pt.Bills != 0 || pt.Cost != 1200 {
			t.Errorf("point = %+v, want bills 0 cost 1200", pt)
		}
	}
}

func TestCheapest(t *testing.T) {
	plans := []model.Plan{
		{Name: "Low premium", MonthlyPremium: 200, Deductible: 6000, Coinsurance: 0.3, OutOfPocketMax: 9000},
		{Name: "Low deductible", MonthlyPremium: 500, Deductible: 1000, Coinsurance: 0.1, OutOfPocketMax: 4000},
	}

	// With no bills the cheap-premium plan wins.
	best, cost := Cheapest(plans, 0, opts12)
	if best.Name != "Low premium" {
		t.Errorf("Cheapest(0) = %q, want Low premium", best.Name)
	}
	if cost != 2400 {
		t.Errorf("Cheapest(0) cost = %.2f, want 2400", cost)
	}

	// With catastrophic bills the capped plan wins: 6000+4000 < 2400+9000.
	best, _ = Cheapest(plans, 100000, opts12)
	if best.Name != "Low deductible" {
		t.Errorf("Cheapest(100000) = %q, want Low deductible", best.Name)
	}
}

func TestRankAt_OrderAndTies(t *testing.T) {
	plans := []model.Plan{
		{Name: "B", MonthlyPremium: 300},
		{Name: "A", MonthlyPremium: 300},
		{Name: "C", MonthlyPremium: 100},
	}

	ranked := RankAt(plans, 0, opts12)
	if ranked[0].Plan.Name != "C" {
		t.Errorf("ranked[0] = %q, want C", ranked[0].Plan.Name)
	}
	// Stable sort keeps input order for the tied pair.
	if ranked[1].Plan.Name != "B" || ranked[2].Plan.Name != "A" {
		t.Errorf("tie order = %q, %q, want B, A", ranked[1].Plan.Name, ranked[2].Plan.Name)
	}
}

func TestBreakdown_BelowDeductible(t *testing.T) {
	p := model.Plan{
		Name: "HDHP", MonthlyPremium: 400, Deductible: 2000,
		Coinsurance: 0.2, OutOfPocketMax: 8000, Copay: 25,
		EmployerHSAContribution: 100, EmployeeHSAContribution: 1000,
	}
	opts := model.EvalOptions{Months: 12, Visits: 2, TaxBracket: 0.25}

	b := Breakdown(p, 1000, opts)
	if b.Premium != 4800 || b.Copays != 50 {
		t.Errorf("premium/copays = %.0f/%.0f, want 4800/50", b.Premium, b.Copays)
	}
	if b.DeductiblePaid != 1000 || b.CoinsurancePaid != 0 {
		t.Errorf("deductible/coinsurance = %.0f/%.0f, want 1000/0", b.DeductiblePaid, b.CoinsurancePaid)
	}
	if b.CappedByOOPMax {
		t.Error("should not be capped below the deductible")
	}

	// Components must reconcile with the model's total.
	sum := b.Premium + b.Copays + b.DeductiblePaid + b.CoinsurancePaid - b.EmployerHSA - b.TaxSavings
	if math.Abs(sum-b.Total) > 1e-9 {
		t.Errorf("components sum to %.2f, total is %.2f", sum, b.Total)
	}
}

func TestBreakdown_CappedAboveOOPMax(t *testing.T) {
	p := model.Plan{
		Name: "HDHP", MonthlyPremium: 400, Deductible: 2000,
		Coinsurance: 0.2, OutOfPocketMax: 8000,
	}

	b := Breakdown(p, 50000, opts12)
	if !b.CappedByOOPMax {
		t.Error("expected CappedByOOPMax")
	}
	if b.Total != 4800+8000 {
		t.Errorf("Total = %.2f, want 12800", b.Total)
	}
}

func TestCrossovers_TwoLinearPlans(t *testing.T) {
	// Zero deductibles and huge caps keep both curves linear end to end.
	plans := []model.Plan{
		// A: 2400 flat premium, pays 50% of everything up to a huge cap.
		{Name: "A", MonthlyPremium: 200, Deductible: 0, Coinsurance: 0.5, OutOfPocketMax: 1e9},
		// B: 4800 flat premium, pays 10% of everything.
		{Name: "B", MonthlyPremium: 400, Deductible: 0, Coinsurance: 0.1, OutOfPocketMax: 1e9},
	}

	// Curves: A = 2400 + 0.5x, B = 4800 + 0.1x → cross at x = 6000.
	series := EvaluateRange(plans, 12000, 25, opts12)
	crossovers := Crossovers(series)
	if len(crossovers) != 1 {
		t.Fatalf("got %d crossovers, want 1", len(crossovers))
	}

	c := crossovers[0]
	if c.From != "A" || c.To != "B" {
		t.Errorf("crossover %s -> %s, want A -> B", c.From, c.To)
	}
	if math.Abs(c.Bills-6000) > 1e-6 {
		t.Errorf("crossover at %.2f, want 6000", c.Bills)
	}
}

func TestCrossovers_NoneWhenOnePlanDominates(t *testing.T) {
	plans := []model.Plan{
		{Name: "Good", MonthlyPremium: 100, Deductible: 1000, Coinsurance: 0.1, OutOfPocketMax: 2000},
		{Name: "Bad", MonthlyPremium: 500, Deductible: 5000, Coinsurance: 0.5, OutOfPocketMax: 9000},
	}

	series := EvaluateRange(plans, 20000, 40, opts12)
	if got := Crossovers(series); len(got) != 0 {
		t.Errorf("got %d crossovers, want 0: %+v", len(got), got)
	}
}

func TestCrossovers_SingleSeries(t *testing.T) {
	series := EvaluateRange([]model.Plan{{Name: "Only"}}, 1000, 10, opts12)
	if got := Crossovers(series); got != nil {
		t.Errorf("got %+v, want nil for a single series", got)
	}
}
