package models

// SheetInfo represents the structure of a single sheet.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// MaxRow is the last used row (1-based, 0 for an empty sheet).
	MaxRow int `json:"max_row"`
	// MaxColumn is the last used column (1-based, 0 for an empty sheet).
	MaxColumn int `json:"max_column"`
	// MergedCells lists merged-cell ranges in declaration order.
	MergedCells []MergedRange `json:"merged_cells,omitempty"`
	// Preview contains the top-left block of display values.
	Preview []PreviewRow `json:"preview,omitempty"`
}
