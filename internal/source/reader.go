// Package source reads plan definitions from CSV input, either local or
// fetched over HTTP.
package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kochb/hicompare/internal/model"
)

// Recognized numeric columns. The single hsa_contribution column is the
// older schema where only the employer contributes.
const (
	colName           = "name"
	colMonthlyPremium = "monthly_premium"
	colDeductible     = "deductible"
	colCopay          = "copay"
	colCoinsurance    = "coinsurance"
	colOOPMax         = "out_of_pocket_max"
	colEmployerHSA    = "employer_hsa_contribution"
	colEmployeeHSA    = "employee_hsa_contribution"
	colHSA            = "hsa_contribution"
)

// Read parses CSV plan rows from r. The first row is a header; columns
// may appear in any order, unknown columns are ignored, and numeric
// cells that are absent or empty default to 0.
func Read(r io.Reader) ([]model.Plan, error) {
	buf := bufio.NewReader(r)

	// Skip UTF-8 BOM if present
	bom, err := buf.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	reader := csv.NewReader(buf)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("plans csv: empty input")
		}
		return nil, fmt.Errorf("plans csv: reading header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIdx[colName]; !ok {
		return nil, fmt.Errorf("plans csv: missing %q column", colName)
	}

	var plans []model.Plan
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("plans csv: row %d: %w", rowNum+1, err)
		}
		rowNum++

		p, err := planFromRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("plans csv: row %d: %w", rowNum, err)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func planFromRow(row []string, colIdx map[string]int) (model.Plan, error) {
	p := model.Plan{Name: field(row, colIdx, colName)}

	for _, nc := range []struct {
		col string
		dst *float64
	}{
		{colMonthlyPremium, &p.MonthlyPremium},
		{colDeductible, &p.Deductible},
		{colCopay, &p.Copay},
		{colCoinsurance, &p.Coinsurance},
		{colOOPMax, &p.OutOfPocketMax},
		{colEmployerHSA, &p.EmployerHSAContribution},
		{colEmployeeHSA, &p.EmployeeHSAContribution},
	} {
		v, err := parseField(field(row, colIdx, nc.col), nc.col)
		if err != nil {
			return model.Plan{}, err
		}
		*nc.dst = v
	}

	// Alternate schema: a lone hsa_contribution column is an employer
	// contribution (only used when the split columns are absent).
	if _, split := colIdx[colEmployerHSA]; !split {
		v, err := parseField(field(row, colIdx, colHSA), colHSA)
		if err != nil {
			return model.Plan{}, err
		}
		p.EmployerHSAContribution = v
	}

	return p, nil
}

// field returns the cell for the named column, or "" when the column is
// absent or the row is short.
func field(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseField converts a numeric cell, treating empty as 0.
func parseField(s, col string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", col, err)
	}
	return v, nil
}
