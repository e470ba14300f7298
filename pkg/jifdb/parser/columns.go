// Package parser provides parsing utilities for journal ranking sheets.
package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field identifies a semantic column in a ranking sheet.
type Field string

const (
	// FieldName is the journal name column.
	FieldName Field = "name"
	// FieldImpact is the impact factor (JIF) column.
	FieldImpact Field = "impactFactor"
	// FieldPercentile is the category percentile column.
	FieldPercentile Field = "percentile"
	// FieldCategory is the subject category column.
	FieldCategory Field = "category"
	// FieldRank is the in-category rank column.
	FieldRank Field = "rank"
)

// fieldTokens maps each field to the header substrings that identify it.
// Matching is case-insensitive after NFKC normalization; the Korean tokens
// cover JCR notice sheets published by Korean institutions.
var fieldTokens = map[Field][]string{
	FieldName:       {"journal", "title", "저널"},
	FieldImpact:     {"impact", "factor", "jif", "2023", "2022"},
	FieldPercentile: {"percentile", "%", "퍼센"},
	FieldCategory:   {"category", "field", "분야"},
	FieldRank:       {"rank", "순위"},
}

// classifyOrder fixes the field iteration order so classification is
// deterministic when a header matches several fields.
var classifyOrder = []Field{FieldName, FieldImpact, FieldPercentile, FieldCategory, FieldRank}

// NormalizeHeader lowercases a header cell after NFKC normalization so that
// full-width and other compatibility forms match the ASCII tokens.
func NormalizeHeader(s string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))
}

// ClassifyColumns assigns each semantic field the first column whose header
// contains one of the field's tokens. Fields with no matching column are
// absent from the result.
//
// First match wins. A header like "Rank 2023" can claim both the rank and
// the impact-factor slot when no earlier column matched either; that is
// accepted best-effort behavior, not an error.
func ClassifyColumns(headers []string) map[Field]int {
	cols := make(map[Field]int, len(classifyOrder))
	for idx, header := range headers {
		normalized := NormalizeHeader(header)
		if normalized == "" {
			continue
		}
		for _, field := range classifyOrder {
			if _, done := cols[field]; done {
				continue
			}
			if matchesField(normalized, field) {
				cols[field] = idx
			}
		}
	}
	return cols
}

func matchesField(normalizedHeader string, field Field) bool {
	for _, token := range fieldTokens[field] {
		if strings.Contains(normalizedHeader, token) {
			return true
		}
	}
	return false
}
