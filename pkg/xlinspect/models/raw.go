package models

// RawCell is a cell reference and its resolved value.
type RawCell struct {
	Ref   string `json:"ref"`
	Value string `json:"value"`
}

// RawRow is one scanned worksheet row.
type RawRow struct {
	R     int       `json:"r"`
	Cells []RawCell `json:"cells"`
}

// RawPreview is the result of scanning worksheet XML directly.
type RawPreview struct {
	// Source names the package or worksheet part that was scanned.
	Source string `json:"source"`
	// SheetName is set when the sheet was located through a package.
	SheetName string `json:"sheet_name,omitempty"`
	// SharedStrings is the size of the shared string table used.
	SharedStrings int      `json:"shared_strings"`
	Rows          []RawRow `json:"rows"`
	// MergedCells lists merged-cell ranges in document order.
	MergedCells []string `json:"merged_cells"`
}
