package parser

import "testing"

var testCols = map[Field]int{
	FieldName:       0,
	FieldImpact:     1,
	FieldPercentile: 2,
	FieldCategory:   3,
	FieldRank:       4,
}

func TestBuildRecord(t *testing.T) {
	row := []string{"Physics of Plasmas", "2.2", "55.4", "Physics, Fluids & Plasmas", "34"}

	rec := BuildRecord(row, testCols, "Sheet1", 2023)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}

	if rec.OriginalName != "Physics of Plasmas" {
		t.Errorf("OriginalName = %q", rec.OriginalName)
	}
	if rec.ImpactFactor != 2.2 {
		t.Errorf("ImpactFactor = %v, expected 2.2", rec.ImpactFactor)
	}
	if rec.Percentile != 55.4 {
		t.Errorf("Percentile = %v, expected 55.4", rec.Percentile)
	}
	if rec.Category != "Physics, Fluids & Plasmas" {
		t.Errorf("Category = %q", rec.Category)
	}
	if rec.Rank != 34 {
		t.Errorf("Rank = %v (type %T), expected 34", rec.Rank, rec.Rank)
	}
	if rec.Sheet != "Sheet1" || rec.Year != 2023 {
		t.Errorf("Sheet = %q, Year = %d", rec.Sheet, rec.Year)
	}
}

func TestBuildRecordSkipsShortName(t *testing.T) {
	if rec := BuildRecord([]string{"AIP", "4.1"}, testCols, "Sheet1", 2023); rec != nil {
		t.Errorf("expected nil for 3-character name, got %+v", rec)
	}
}

func TestBuildRecordSkipsEmptyName(t *testing.T) {
	if rec := BuildRecord([]string{"", "4.1"}, testCols, "Sheet1", 2023); rec != nil {
		t.Errorf("expected nil for empty name, got %+v", rec)
	}
}

func TestBuildRecordSkipsNumericName(t *testing.T) {
	if rec := BuildRecord([]string{"20234", "4.1"}, testCols, "Sheet1", 2023); rec != nil {
		t.Errorf("expected nil for numeric name, got %+v", rec)
	}
}

func TestBuildRecordDefaultsOnBadValues(t *testing.T) {
	row := []string{"NATURE PHYSICS", "1000", "150", "", ""}

	rec := BuildRecord(row, testCols, "Sheet1", 2023)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}

	if rec.ImpactFactor != 0 {
		t.Errorf("out-of-range impact factor should default to 0, got %v", rec.ImpactFactor)
	}
	if rec.Percentile != 0 {
		t.Errorf("out-of-range percentile should default to 0, got %v", rec.Percentile)
	}
	if rec.Rank != "" {
		t.Errorf("empty rank should default to \"\", got %v", rec.Rank)
	}
}

func TestBuildRecordShortRow(t *testing.T) {
	// GetRows trims trailing empty cells; missing columns default silently.
	rec := BuildRecord([]string{"NATURE PHYSICS"}, testCols, "Sheet1", 2023)
	if rec == nil {
		t.Fatal("expected a record, got nil")
	}
	if rec.ImpactFactor != 0 || rec.Percentile != 0 || rec.Category != "" || rec.Rank != "" {
		t.Errorf("expected zero-value fields, got %+v", rec)
	}
}
