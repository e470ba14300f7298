// Package jifdb builds a journal impact-factor lookup table from JCR
// ranking workbooks.
package jifdb

import "log/slog"

// HeaderRowAuto selects per-sheet header-row detection by token scan.
const HeaderRowAuto = -1

// DefaultYear is the JCR edition year stamped on extracted records.
const DefaultYear = 2023

// Options configures extraction behavior.
type Options struct {
	// HeaderRow is the 0-based row index of the column headers, or
	// HeaderRowAuto to detect it per sheet.
	HeaderRow int
	// Year is stamped on every extracted record.
	Year int
	// Sheet restricts extraction to a single named sheet when non-empty.
	Sheet string
	// Logger receives per-sheet progress and warnings. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns options matching the published JCR 2023 lists:
// auto-detected header row, all sheets.
func DefaultOptions() Options {
	return Options{
		HeaderRow: HeaderRowAuto,
		Year:      DefaultYear,
	}
}
