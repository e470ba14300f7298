// Package models defines data structures for journal ranking extraction.
package models

// JournalRecord holds one journal's ranking data as derived from a sheet row.
type JournalRecord struct {
	// OriginalName is the journal name exactly as it appeared in the sheet.
	OriginalName string `json:"originalName"`
	// ImpactFactor is the JIF value; 0 when the sheet had none.
	ImpactFactor float64 `json:"impactFactor"`
	// Percentile is the journal's category percentile in [0, 100].
	Percentile float64 `json:"percentile"`
	// Category is the subject category, possibly in Korean.
	Category string `json:"category"`
	// Rank is an int when the cell held a number, otherwise the raw string
	// (composite ranks like "3/120" appear in some lists).
	Rank any `json:"rank"`
	// Sheet is the name of the sheet the record came from.
	Sheet string `json:"sheet"`
	// Year is the JCR edition year.
	Year int `json:"year"`
}

// Database maps lookup keys to journal records. Each journal is stored under
// both the upper-case and lower-case form of its name, and both keys point
// at the same record.
type Database map[string]*JournalRecord
