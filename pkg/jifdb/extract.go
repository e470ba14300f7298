package jifdb

import (
	"fmt"

	"github.com/plasmalab/jifdb-go/pkg/jifdb/models"
	"github.com/plasmalab/jifdb-go/pkg/jifdb/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the workbook at path and builds the journal database.
// Unreadable sheets are logged and skipped; a sheet with no classifiable
// name column contributes nothing. The returned database is unfiltered;
// apply FilterByImpactFactor before serializing.
func Extract(path string, opts Options) (models.Database, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets, err := selectSheets(f, opts)
	if err != nil {
		return nil, err
	}

	db := make(models.Database)
	for _, sheetName := range sheets {
		if err := extractSheet(f, sheetName, opts, db); err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("skipping unreadable sheet", "sheet", sheetName, "error", err)
			}
		}
	}
	return db, nil
}

// selectSheets resolves the sheet list, honoring the Sheet restriction.
func selectSheets(f *excelize.File, opts Options) ([]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	if opts.Sheet == "" {
		return sheets, nil
	}
	for _, name := range sheets {
		if name == opts.Sheet {
			return []string{name}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, opts.Sheet)
}

func extractSheet(f *excelize.File, sheetName string, opts Options, db models.Database) error {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return &SheetError{SheetName: sheetName, Err: err}
	}

	headerRow := opts.HeaderRow
	if headerRow == HeaderRowAuto {
		headerRow = parser.DetectHeaderRow(rows)
	}
	if headerRow < 0 || headerRow >= len(rows) {
		if opts.Logger != nil {
			opts.Logger.Debug("no header row found", "sheet", sheetName)
		}
		return nil
	}

	cols := parser.ClassifyColumns(rows[headerRow])
	if _, ok := cols[parser.FieldName]; !ok {
		if opts.Logger != nil {
			opts.Logger.Debug("no journal name column", "sheet", sheetName, "headerRow", headerRow)
		}
		return nil
	}

	inserted := 0
	for _, row := range rows[headerRow+1:] {
		rec := parser.BuildRecord(row, cols, sheetName, opts.Year)
		if rec == nil {
			continue
		}
		if Insert(db, rec) {
			inserted++
		}
	}
	if opts.Logger != nil {
		opts.Logger.Debug("sheet processed",
			"sheet", sheetName, "rows", len(rows), "headerRow", headerRow, "inserted", inserted)
	}
	return nil
}
