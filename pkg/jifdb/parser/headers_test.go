package parser

import "testing"

func TestDetectHeaderRow(t *testing.T) {
	rows := [][]string{
		{"JCR 2023 상위저널 리스트"},
		{},
		{"No.", "Journal Title", "Category", "JIF", "Percentile"},
		{"1", "NATURE", "Multidisciplinary", "50.5", "99.2"},
	}

	if got := DetectHeaderRow(rows); got != 2 {
		t.Errorf("DetectHeaderRow = %d, expected 2", got)
	}
}

func TestDetectHeaderRowFirstRow(t *testing.T) {
	rows := [][]string{
		{"Journal", "JIF"},
		{"NATURE", "50.5"},
	}

	if got := DetectHeaderRow(rows); got != 0 {
		t.Errorf("DetectHeaderRow = %d, expected 0", got)
	}
}

func TestDetectHeaderRowNone(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"1", "2"},
	}

	if got := DetectHeaderRow(rows); got != -1 {
		t.Errorf("DetectHeaderRow = %d, expected -1", got)
	}
}

func TestDetectHeaderRowBeyondScanLimit(t *testing.T) {
	rows := make([][]string, HeaderScanLimit+2)
	for i := range rows {
		rows[i] = []string{"preamble"}
	}
	rows[HeaderScanLimit+1] = []string{"Journal", "JIF"}

	if got := DetectHeaderRow(rows); got != -1 {
		t.Errorf("DetectHeaderRow = %d, expected -1 (header past scan limit)", got)
	}
}

func TestDetectHeaderRowEmpty(t *testing.T) {
	if got := DetectHeaderRow(nil); got != -1 {
		t.Errorf("DetectHeaderRow(nil) = %d, expected -1", got)
	}
}
