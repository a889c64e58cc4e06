package models

// ColumnDimension is the width of a column with an explicit width.
type ColumnDimension struct {
	// Column is the column letter, e.g. "C".
	Column string  `json:"column"`
	Width  float64 `json:"width"`
}

// RowDimension is the height of a row.
type RowDimension struct {
	// R is the row index (1-based).
	R      int     `json:"r"`
	Height float64 `json:"height"`
	// Default is true when the row has no custom height.
	Default bool `json:"default"`
}

// TemplateInfo describes the layout and styling of a sheet used as a form
// template.
type TemplateInfo struct {
	BookName    string            `json:"book_name"`
	SheetName   string            `json:"sheet_name"`
	MergedCells []MergedRange     `json:"merged_cells,omitempty"`
	Columns     []ColumnDimension `json:"columns,omitempty"`
	Rows        []RowDimension    `json:"rows,omitempty"`
	Cells       []CellStyleInfo   `json:"cells,omitempty"`
}
