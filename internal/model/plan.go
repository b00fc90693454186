// Package model defines the plan cost model and comparison result types.
package model

// Plan holds the parameters of one health insurance plan.
// Values are never mutated after construction; a zero field means the
// plan simply doesn't have that feature (no copay, no HSA, ...).
type Plan struct {
	Name                    string
	MonthlyPremium          float64
	Deductible              float64
	OutOfPocketMax          float64
	Coinsurance             float64 // insured's share of post-deductible costs, 0..1
	EmployerHSAContribution float64
	EmployeeHSAContribution float64
	Copay                   float64 // per office visit
}

// Premium returns the total premium paid over the coverage period.
func (p Plan) Premium(months int) float64 {
	return p.MonthlyPremium * float64(months)
}

// TaxSavings returns the income tax avoided by pre-tax employee HSA
// contributions at the given marginal tax bracket.
func (p Plan) TaxSavings(taxBracket float64) float64 {
	return p.EmployeeHSAContribution * taxBracket
}

// Expenses returns the insured-borne share of the medical bills: copays
// plus everything under the deductible, plus coinsurance above it,
// capped at the out-of-pocket maximum. Copays count toward the
// deductible threshold.
func (p Plan) Expenses(totalExpenses float64, visits int) float64 {
	copays := float64(visits) * p.Copay
	if copays+totalExpenses < p.Deductible {
		return copays + totalExpenses
	}
	expenses := copays + p.Deductible + (totalExpenses-copays-p.Deductible)*p.Coinsurance
	if expenses > p.OutOfPocketMax {
		expenses = p.OutOfPocketMax
	}
	return expenses
}

// ActualCost returns what the insured actually pays over the coverage
// period: premiums plus medical expenses, minus the employer's HSA
// contribution and the tax savings on their own.
func (p Plan) ActualCost(totalExpenses float64, months, visits int, taxBracket float64) float64 {
	return p.Premium(months) + p.Expenses(totalExpenses, visits) -
		p.EmployerHSAContribution - p.TaxSavings(taxBracket)
}
