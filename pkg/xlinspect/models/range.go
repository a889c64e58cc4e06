package models

// CellRange represents cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// MergedRange represents a merged-cell declaration.
type MergedRange struct {
	// Ref is the range string, e.g. "A1:C1".
	Ref string `json:"ref"`
	CellRange
	// Value is the value of the top-left cell.
	Value string `json:"value,omitempty"`
}
