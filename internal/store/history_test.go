package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSaveAndRecentRuns(t *testing.T) {
	h := openTestHistory(t)

	id, err := h.SaveRun(Run{
		PlansFile:    "plans.csv",
		MedicalBills: 2000,
		Months:       12,
		Visits:       3,
		TaxBracket:   0.25,
		Cheapest:     "Bronze",
		CheapestCost: 6800,
		PlanCosts: []PlanCost{
			{PlanName: "Bronze", Total: 6800},
			{PlanName: "Gold", Total: 7400},
		},
	})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun returned empty run ID")
	}

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id {
		t.Errorf("run ID = %q, want %q", r.ID, id)
	}
	if r.Cheapest != "Bronze" || r.CheapestCost != 6800 {
		t.Errorf("cheapest = %q/%v, want Bronze/6800", r.Cheapest, r.CheapestCost)
	}
	if r.MedicalBills != 2000 || r.Months != 12 || r.Visits != 3 || r.TaxBracket != 0.25 {
		t.Errorf("run parameters not round-tripped: %+v", r)
	}
	if len(r.PlanCosts) != 2 {
		t.Fatalf("expected 2 plan costs, got %d", len(r.PlanCosts))
	}
	if r.PlanCosts[0].PlanName != "Bronze" || r.PlanCosts[1].PlanName != "Gold" {
		t.Errorf("plan costs out of order: %+v", r.PlanCosts)
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	h := openTestHistory(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := h.SaveRun(Run{
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			PlansFile:    "plans.csv",
			MedicalBills: float64(i * 1000),
			Months:       12,
			Cheapest:     "Bronze",
		})
		if err != nil {
			t.Fatalf("SaveRun %d: %v", i, err)
		}
	}

	runs, err := h.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].MedicalBills != 4000 || runs[2].MedicalBills != 2000 {
		t.Errorf("runs not newest-first: %v, %v", runs[0].MedicalBills, runs[2].MedicalBills)
	}

	n, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if n != 5 {
		t.Errorf("RunCount = %d, want 5", n)
	}
}

func TestRecentRunsEmpty(t *testing.T) {
	h := openTestHistory(t)

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if runs != nil {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestClear(t *testing.T) {
	h := openTestHistory(t)

	if _, err := h.SaveRun(Run{PlansFile: "plans.csv", Cheapest: "Gold"}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := h.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	n, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if n != 0 {
		t.Errorf("RunCount after Clear = %d, want 0", n)
	}
}
