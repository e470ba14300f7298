package jifdb

import (
	"github.com/plasmalab/jifdb-go/pkg/jifdb/parser"
	"github.com/xuri/excelize/v2"
)

// SheetReport describes one sheet's structure: dimensions, the detected or
// configured header row, the column classification, and the first data rows.
type SheetReport struct {
	Name string
	// RowCount and ColCount are the sheet's used dimensions.
	RowCount int
	ColCount int
	// HeaderRow is the 0-based header row index, -1 when none was found.
	HeaderRow int
	Headers   []string
	Columns   map[parser.Field]int
	Preview   [][]string
}

// Inspect reads the workbook and reports each sheet's layout without
// writing any output file. Use it to choose header-row and sheet settings
// for an unfamiliar workbook before extracting.
func Inspect(path string, opts Options, previewRows int) ([]SheetReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets, err := selectSheets(f, opts)
	if err != nil {
		return nil, err
	}

	reports := make([]SheetReport, 0, len(sheets))
	for _, sheetName := range sheets {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("skipping unreadable sheet", "sheet", sheetName, "error", err)
			}
			continue
		}

		report := SheetReport{
			Name:      sheetName,
			RowCount:  len(rows),
			HeaderRow: -1,
		}
		for _, row := range rows {
			if len(row) > report.ColCount {
				report.ColCount = len(row)
			}
		}

		headerRow := opts.HeaderRow
		if headerRow == HeaderRowAuto {
			headerRow = parser.DetectHeaderRow(rows)
		}
		if headerRow >= 0 && headerRow < len(rows) {
			report.HeaderRow = headerRow
			report.Headers = rows[headerRow]
			report.Columns = parser.ClassifyColumns(rows[headerRow])
			for i := headerRow + 1; i < len(rows) && len(report.Preview) < previewRows; i++ {
				report.Preview = append(report.Preview, rows[i])
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}
