package model

import (
	"math"
	"testing"
)

// hsa2000 mirrors a typical HDHP: $400/mo premium, $2000 deductible,
// 20% coinsurance, $8000 out-of-pocket max.
var hsa2000 = Plan{
	Name:           "HSA 2000-20",
	MonthlyPremium: 400,
	Deductible:     2000,
	Coinsurance:    0.20,
	OutOfPocketMax: 8000,
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestActualCost_WorkedExample(t *testing.T) {
	tests := []struct {
		bills float64
		want  float64
	}{
		{0, 4800},      // premiums only
		{2000, 6800},   // deductible fully met, nothing above it
		{32000, 12800}, // expenses clamped to the OOP max
	}

	for _, tt := range tests {
		got := hsa2000.ActualCost(tt.bills, 12, 0, 0)
		if !almostEqual(got, tt.want) {
			t.Errorf("ActualCost(%.0f) = %.2f, want %.2f", tt.bills, got, tt.want)
		}
	}
}

func TestActualCost_ZeroBillsIsPremiumMinusOffsets(t *testing.T) {
	p := Plan{
		MonthlyPremium:          300,
		Deductible:              3000,
		OutOfPocketMax:          10000,
		Coinsurance:             0.20,
		EmployerHSAContribution: 100,
		EmployeeHSAContribution: 2000,
	}

	got := p.ActualCost(0, 12, 0, 0.25)
	want := 300*12 - 100 - 2000*0.25
	if !almostEqual(got, want) {
		t.Errorf("ActualCost(0) = %.2f, want %.2f", got, want)
	}
}

func TestActualCost_LinearBelowDeductible(t *testing.T) {
	// Below the deductible every extra dollar of bills is a dollar of cost.
	base := hsa2000.ActualCost(500, 12, 0, 0)
	for _, delta := range []float64{1, 100, 499} {
		got := hsa2000.ActualCost(500+delta, 12, 0, 0)
		if !almostEqual(got-base, delta) {
			t.Errorf("cost grew by %.2f for %.0f extra bills, want 1:1", got-base, delta)
		}
	}
}

func TestActualCost_FlatAboveOOPMax(t *testing.T) {
	// Once expenses clamp to the OOP max, further bills change nothing.
	at := hsa2000.ActualCost(32000, 12, 0, 0)
	for _, bills := range []float64{50000, 100000, 1e7} {
		got := hsa2000.ActualCost(bills, 12, 0, 0)
		if !almostEqual(got, at) {
			t.Errorf("ActualCost(%.0f) = %.2f, want flat %.2f", bills, got, at)
		}
	}
}

func TestExpenses_CopaysCountTowardDeductible(t *testing.T) {
	p := Plan{Deductible: 1000, Coinsurance: 0.5, OutOfPocketMax: 5000, Copay: 50}

	// 4 visits * $50 = $200 in copays. With $700 of bills we're still
	// under the deductible: the insured pays copays + bills directly.
	if got := p.Expenses(700, 4); !almostEqual(got, 900) {
		t.Errorf("Expenses(700, 4) = %.2f, want 900", got)
	}

	// With $900 of bills the threshold is crossed: copays + deductible +
	// coinsurance on the remainder.
	want := 200 + 1000 + (900-200-1000)*0.5
	if got := p.Expenses(900, 4); !almostEqual(got, want) {
		t.Errorf("Expenses(900, 4) = %.2f, want %.2f", got, want)
	}
}

func TestExpenses_DeductibleBoundaryIsExclusive(t *testing.T) {
	p := Plan{Deductible: 2000, Coinsurance: 0.2, OutOfPocketMax: 8000}

	// Exactly at the deductible the coinsurance branch applies, but the
	// remainder above the deductible is zero, so both branches agree.
	if got := p.Expenses(2000, 0); !almostEqual(got, 2000) {
		t.Errorf("Expenses(2000) = %.2f, want 2000", got)
	}
	if got := p.Expenses(1999.99, 0); !almostEqual(got, 1999.99) {
		t.Errorf("Expenses(1999.99) = %.2f, want 1999.99", got)
	}
}

func TestPremium_ScalesWithMonths(t *testing.T) {
	p := Plan{MonthlyPremium: 250}
	if got := p.Premium(6); !almostEqual(got, 1500) {
		t.Errorf("Premium(6) = %.2f, want 1500", got)
	}
	if got := p.Premium(0); !almostEqual(got, 0) {
		t.Errorf("Premium(0) = %.2f, want 0", got)
	}
}

func TestTaxSavings(t *testing.T) {
	p := Plan{EmployeeHSAContribution: 3000}
	if got := p.TaxSavings(0.22); !almostEqual(got, 660) {
		t.Errorf("TaxSavings(0.22) = %.2f, want 660", got)
	}
	if got := p.TaxSavings(0); !almostEqual(got, 0) {
		t.Errorf("TaxSavings(0) = %.2f, want 0", got)
	}
}

func TestActualCost_ZeroValuePlan(t *testing.T) {
	// A zero plan has no premium, no deductible and a $0 OOP max: the
	// insured pays nothing regardless of bills.
	var p Plan
	if got := p.ActualCost(10000, 12, 3, 0.3); !almostEqual(got, 0) {
		t.Errorf("zero plan ActualCost = %.2f, want 0", got)
	}
}
