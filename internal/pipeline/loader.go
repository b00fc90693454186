package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kochb/hicompare/internal/model"
	"github.com/kochb/hicompare/internal/source"
)

// Load reads plans from src: "-" for stdin, an http(s) URL, or a local
// file path.
func Load(ctx context.Context, src string) ([]model.Plan, error) {
	switch {
	case src == "-":
		plans, err := source.Read(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading plans from stdin: %w", err)
		}
		return plans, nil

	case source.IsURL(src):
		return source.Fetch(ctx, src)

	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("opening plans file: %w", err)
		}
		defer func() { _ = f.Close() }()

		plans, err := source.Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src, err)
		}
		return plans, nil
	}
}

// HistoryDir returns the platform-appropriate cache directory.
func HistoryDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "hicompare")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "hicompare")
}

// HistoryPath returns the full path to the comparison history database.
func HistoryPath() string {
	return filepath.Join(HistoryDir(), "history.db")
}
