package models

// FontInfo describes the font of a cell.
type FontInfo struct {
	Name string  `json:"name,omitempty"`
	Size float64 `json:"size,omitempty"`
	Bold bool    `json:"bold"`
	// Color is an RGB hex string, "Theme <n>" for theme colors, or "None".
	Color string `json:"color"`
}

// FillInfo describes a pattern fill. Type is empty when the cell has no fill.
type FillInfo struct {
	Type  string `json:"type,omitempty"`
	Color string `json:"color,omitempty"`
}

// BorderInfo holds the line style of each side; empty means no line.
type BorderInfo struct {
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
}

// AlignmentInfo describes cell alignment.
type AlignmentInfo struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
	Wrap       bool   `json:"wrap"`
	Rotation   int    `json:"rotation"`
}

// CellStyleInfo is the value and styling of one cell.
type CellStyleInfo struct {
	// Ref is the cell reference, e.g. "B3".
	Ref string `json:"ref"`
	// Value is the cell value; empty for styled blank cells.
	Value     string        `json:"value,omitempty"`
	Font      FontInfo      `json:"font"`
	Fill      FillInfo      `json:"fill"`
	Border    BorderInfo    `json:"border"`
	Alignment AlignmentInfo `json:"alignment"`
}

// HasBorder reports whether any side has a line style.
func (c CellStyleInfo) HasBorder() bool {
	b := c.Border
	return b.Left != "" || b.Right != "" || b.Top != "" || b.Bottom != ""
}
