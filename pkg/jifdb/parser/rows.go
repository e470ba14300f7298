package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/plasmalab/jifdb-go/pkg/jifdb/models"
)

// minNameLength filters out stray numeric or near-empty cells that were
// misclassified as journal names.
const minNameLength = 3

// BuildRecord converts one data row into a JournalRecord using the sheet's
// column classification. It returns nil when the row has no usable journal
// name; individual field coercion failures fall back to zero values rather
// than failing the row.
func BuildRecord(row []string, cols map[Field]int, sheet string, year int) *models.JournalRecord {
	name := ""
	if idx, ok := cols[FieldName]; ok {
		if v, ok := ParseName(cell(row, idx)); ok {
			name = v
		}
	}
	if utf8.RuneCountInString(name) <= minNameLength {
		return nil
	}

	rec := &models.JournalRecord{
		OriginalName: name,
		Rank:         "",
		Sheet:        sheet,
		Year:         year,
	}
	if idx, ok := cols[FieldImpact]; ok {
		if v, ok := ParseImpactFactor(cell(row, idx)); ok {
			rec.ImpactFactor = v
		}
	}
	if idx, ok := cols[FieldPercentile]; ok {
		if v, ok := ParsePercentile(cell(row, idx)); ok {
			rec.Percentile = v
		}
	}
	if idx, ok := cols[FieldCategory]; ok {
		rec.Category = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := cols[FieldRank]; ok {
		if v, ok := ParseRank(cell(row, idx)); ok {
			rec.Rank = v
		}
	}
	return rec
}

// cell returns the value at idx, or "" when the row is shorter (excelize
// trims trailing empty cells from GetRows results).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
