package parser

// HeaderScanLimit bounds how many leading rows are scored during header
// auto-detection. JCR notice sheets put title and preamble rows above the
// header, but never this many.
const HeaderScanLimit = 10

// DetectHeaderRow locates the header row of a sheet by scoring each of the
// first HeaderScanLimit rows on how many distinct semantic fields its cells
// classify to. Returns the 0-based index of the best-scoring row, or -1
// when no row matches any field.
func DetectHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > HeaderScanLimit {
		limit = HeaderScanLimit
	}

	best, bestScore := -1, 0
	for i := 0; i < limit; i++ {
		score := len(ClassifyColumns(rows[i]))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
