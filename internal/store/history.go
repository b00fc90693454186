// Package store provides a SQLite-backed history of comparison runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History provides SQLite-backed run history.
type History struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// PlanCost is one plan's total for a recorded run.
type PlanCost struct {
	PlanName string
	Total    float64
}

// Run is one recorded comparison.
type Run struct {
	ID           string
	CreatedAt    time.Time
	PlansFile    string
	MedicalBills float64
	Months       int
	Visits       int
	TaxBracket   float64
	Cheapest     string
	CheapestCost float64
	PlanCosts    []PlanCost
}

// SaveRun records a comparison run and its per-plan totals.
// A run ID is assigned if the run doesn't carry one.
func (h *History) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	tx, err := h.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs
		(run_id, created_at, plans_file, medical_bills, months, visits,
		 tax_bracket, cheapest_plan, cheapest_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339), r.PlansFile, r.MedicalBills,
		r.Months, r.Visits, r.TaxBracket, r.Cheapest, r.CheapestCost,
	)
	if err != nil {
		return "", err
	}

	for _, pc := range r.PlanCosts {
		_, err = tx.Exec(`INSERT INTO run_plans (run_id, plan_name, total_cost)
			VALUES (?, ?, ?)`, r.ID, pc.PlanName, pc.Total)
		if err != nil {
			return "", err
		}
	}

	return r.ID, tx.Commit()
}

// RecentRuns returns up to limit runs, newest first, with per-plan totals.
func (h *History) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := h.db.Query(`SELECT
		run_id, created_at, plans_file, medical_bills, months, visits,
		tax_bracket, cheapest_plan, cheapest_cost
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	byID := make(map[string]int)
	for rows.Next() {
		var r Run
		var createdStr string
		err := rows.Scan(
			&r.ID, &createdStr, &r.PlansFile, &r.MedicalBills, &r.Months,
			&r.Visits, &r.TaxBracket, &r.Cheapest, &r.CheapestCost,
		)
		if err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		byID[r.ID] = len(runs)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}

	// Batch-load per-plan totals
	planRows, err := h.db.Query(`SELECT rp.run_id, rp.plan_name, rp.total_cost
		FROM run_plans rp
		JOIN (SELECT run_id FROM runs ORDER BY created_at DESC, run_id LIMIT ?) recent
		ON rp.run_id = recent.run_id
		ORDER BY rp.plan_name`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = planRows.Close() }()

	for planRows.Next() {
		var runID string
		var pc PlanCost
		if err := planRows.Scan(&runID, &pc.PlanName, &pc.Total); err != nil {
			return nil, err
		}
		if i, ok := byID[runID]; ok {
			runs[i].PlanCosts = append(runs[i].PlanCosts, pc)
		}
	}
	return runs, planRows.Err()
}

// RunCount returns the number of recorded runs.
func (h *History) RunCount() (int, error) {
	var n int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}

// Clear deletes all recorded runs.
func (h *History) Clear() error {
	_, err := h.db.Exec("DELETE FROM runs")
	return err
}
