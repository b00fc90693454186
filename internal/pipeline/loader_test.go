package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.csv")
	csv := "name,monthly_premium,deductible\nBronze,250,6000\nGold,550,1000\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatal(err)
	}

	plans, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	if plans[1].Name != "Gold" || plans[1].MonthlyPremium != 550 {
		t.Errorf("plans[1] = %+v, want Gold/550", plans[1])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHistoryPath_HonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	want := filepath.Join(dir, "hicompare", "history.db")
	if got := HistoryPath(); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
}
