package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kochb/hicompare/internal/model"
)

const (
	fetchTimeout = 10 * time.Second
	maxBodySize  = 1 << 20 // 1 MB, plan files are tiny
)

// IsURL reports whether src looks like an http(s) URL rather than a
// local file path.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Fetch downloads a plans CSV from the given URL and parses it.
func Fetch(ctx context.Context, url string) ([]model.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching plans: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")
	req.Header.Set("User-Agent", "hicompare/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching plans: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching plans: unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("fetching plans: reading response: %w", err)
	}

	return Read(bytes.NewReader(body))
}
