package models

// WorkbookInfo represents the workbook-level summary.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists every sheet in tab order.
	SheetNames []string `json:"sheet_names"`
	// ActiveSheet is the name of the sheet selected when the file was saved.
	ActiveSheet string `json:"active_sheet"`
	// Sheets holds the inspected sheets in tab order.
	Sheets []SheetInfo `json:"sheets"`
}
