package parser

import (
	"strconv"
	"strings"
)

// Range gates for numeric coercion. Values outside these bounds are treated
// as noise (year numbers, row counters) and discarded.
const (
	impactFactorMax = 500
	percentileMax   = 100
)

// ParseImpactFactor coerces a cell to an impact factor. Only values in the
// open range (0, 500) are accepted; anything else returns 0, false.
func ParseImpactFactor(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || v >= impactFactorMax {
		return 0, false
	}
	return v, true
}

// ParsePercentile coerces a cell to a percentile in [0, 100]. A percent
// sign in the cell is tolerated.
func ParsePercentile(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "%", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 || v > percentileMax {
		return 0, false
	}
	return v, true
}

// ParseRank coerces a cell to an integer rank, falling back to the trimmed
// string for composite values like "3/120". Empty cells yield "", false.
func ParseRank(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i, true
	}
	// Spreadsheets often store integer ranks as floats ("3.0").
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return trimmed, true
}

// ParseName coerces a cell to a journal name. Pure-digit cells are rejected
// so stray numeric columns cannot masquerade as names.
func ParseName(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || isAllDigits(trimmed) {
		return "", false
	}
	return trimmed, true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
