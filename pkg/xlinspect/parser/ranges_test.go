package parser

import (
	"testing"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected *models.CellRange
	}{
		{"A1:C1", &models.CellRange{R1: 1, C1: 1, R2: 1, C2: 3}},
		{"$B$2:$D$10", &models.CellRange{R1: 2, C1: 2, R2: 10, C2: 4}},
		{"AA5", &models.CellRange{R1: 5, C1: 27, R2: 5, C2: 27}},
		{"A1:B2:C3", nil},
		{"nonsense", nil},
		{"", nil},
	}

	for _, tt := range tests {
		result := ParseRange(tt.input)
		if (result == nil) != (tt.expected == nil) {
			t.Errorf("ParseRange(%q) = %v, expected %v", tt.input, result, tt.expected)
			continue
		}
		if result != nil && *result != *tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, *result, *tt.expected)
		}
	}
}

func TestExtractMergedCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", " Attendance ")
	if err := f.MergeCell(sheetName, "A1", "C1"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	if err := f.MergeCell(sheetName, "E3", "E6"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	merged, err := ExtractMergedCells(saveAndOpen(t, f), sheetName)
	if err != nil {
		t.Fatalf("ExtractMergedCells failed: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("Expected 2 merged ranges, got %d", len(merged))
	}

	byRef := make(map[string]models.MergedRange)
	for _, m := range merged {
		byRef[m.Ref] = m
	}

	title, ok := byRef["A1:C1"]
	if !ok {
		t.Fatalf("Expected A1:C1 in %+v", merged)
	}
	if title.Value != "Attendance" {
		t.Errorf("Expected value 'Attendance', got %q", title.Value)
	}
	if title.CellRange != (models.CellRange{R1: 1, C1: 1, R2: 1, C2: 3}) {
		t.Errorf("Unexpected bounds %+v", title.CellRange)
	}

	if col, ok := byRef["E3:E6"]; !ok || col.R2 != 6 || col.C1 != 5 {
		t.Errorf("Expected E3:E6 bounds, got %+v", col)
	}
}

func TestExtractMergedCellsNone(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	merged, err := ExtractMergedCells(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractMergedCells failed: %v", err)
	}
	if len(merged) != 0 {
		t.Errorf("Expected no merged ranges, got %+v", merged)
	}
}

func TestSheetBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "x")
	f.SetCellValue(sheetName, "D7", 1)

	maxRow, maxCol, err := SheetBounds(saveAndOpen(t, f), sheetName)
	if err != nil {
		t.Fatalf("SheetBounds failed: %v", err)
	}
	if maxRow != 7 || maxCol != 4 {
		t.Errorf("Expected bounds (7, 4), got (%d, %d)", maxRow, maxCol)
	}
}

func TestSheetBoundsEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	maxRow, maxCol, err := SheetBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("SheetBounds failed: %v", err)
	}
	if maxRow != 0 || maxCol != 0 {
		t.Errorf("Expected bounds (0, 0), got (%d, %d)", maxRow, maxCol)
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "x"},
		{"", "y"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 1 || maxRow != 2 || minCol != 1 || maxCol != 2 {
		t.Errorf("findDataBounds = (%d, %d, %d, %d), expected (1, 2, 1, 2)", minRow, maxRow, minCol, maxCol)
	}

	minRow, maxRow, _, _ = findDataBounds(nil)
	if minRow != -1 || maxRow != -1 {
		t.Errorf("Expected -1 bounds for no data, got (%d, %d)", minRow, maxRow)
	}
}
