package model

// EvalOptions holds the shared evaluation parameters for a comparison run.
type EvalOptions struct {
	Months     int
	Visits     int
	TaxBracket float64
}

// DefaultEvalOptions covers a standard 12-month coverage period with no
// office visits and no tax effects.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{Months: 12}
}

// CostPoint is one sample on a plan's cost curve.
type CostPoint struct {
	Bills float64 // total medical bills (x)
	Cost  float64 // what the insured pays (y)
}

// PlanSeries is one plan's cost curve across a bill range.
type PlanSeries struct {
	Plan   Plan
	Points []CostPoint
}

// CostBreakdown splits a plan's actual cost into its components at one
// bill level. Premium, Copays, DeductiblePaid and CoinsurancePaid are
// what the insured pays out; EmployerHSA and TaxSavings offset them.
type CostBreakdown struct {
	Plan            Plan
	Bills           float64
	Premium         float64
	Copays          float64
	DeductiblePaid  float64
	CoinsurancePaid float64
	EmployerHSA     float64
	TaxSavings      float64
	Total           float64
	CappedByOOPMax  bool
}

// Crossover marks a bill level where the cheapest plan changes.
type Crossover struct {
	Bills float64
	From  string // plan that was cheapest below this point
	To    string // plan that is cheapest above it
}
