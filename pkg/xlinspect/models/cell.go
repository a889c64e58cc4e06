// Package models defines the data structures reported by inspection.
package models

// PreviewRow is one row of a sheet preview.
type PreviewRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Values holds the trimmed display values from the first preview column
	// onward. Empty cells are "".
	Values []string `json:"values"`
}

// CellEntry is a single cell of a row dump.
type CellEntry struct {
	// C is the column index (1-based).
	C int `json:"c"`
	// Value is the display value with surrounding space trimmed and line
	// breaks flattened to spaces.
	Value string `json:"value,omitempty"`
	// Present is false when the cell holds no value.
	Present bool `json:"present"`
}

// RowCells is one row of a row dump.
type RowCells struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells covers every requested column in order.
	Cells []CellEntry `json:"cells"`
}

// RowDump is the result of dumping a rectangular block of cells.
type RowDump struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the dumped sheet.
	SheetName string `json:"sheet_name"`
	// Rows holds the dumped rows in order.
	Rows []RowCells `json:"rows"`
}
