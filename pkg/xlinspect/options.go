// Package xlinspect reports the structure of spreadsheet files: sheet names,
// merged ranges, dimensions, cell values and styling.
package xlinspect

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures Inspect.
type Options struct {
	// SheetName selects one sheet. Empty selects the active sheet.
	SheetName string
	// AllSheets inspects every sheet and takes precedence over SheetName.
	AllSheets bool
	// PreviewRows is the number of rows in each sheet preview.
	PreviewRows int
	// PreviewCols is the number of columns in each sheet preview.
	PreviewCols int
	// Logger receives warnings for sheet parts that could not be read.
	// If nil, nothing is logged.
	Logger *logrus.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		PreviewRows: 15,
		PreviewCols: 10,
	}
}

// TemplateOptions configures InspectTemplate.
type TemplateOptions struct {
	// SheetName selects the sheet. Empty selects the active sheet.
	SheetName string
	// HeightRows is the number of leading rows whose height is reported.
	HeightRows int
	// DetailRows and DetailCols bound the block of cells whose styling is
	// reported.
	DetailRows int
	DetailCols int
	Logger     *logrus.Logger
}

// DefaultTemplateOptions returns default template options.
func DefaultTemplateOptions() TemplateOptions {
	return TemplateOptions{
		HeightRows: 20,
		DetailRows: 15,
		DetailCols: 29,
	}
}

// RowOptions configures InspectRows. Bounds are 1-based and inclusive.
type RowOptions struct {
	SheetName string
	FromRow   int
	ToRow     int
	FromCol   int
	ToCol     int
	Logger    *logrus.Logger
}

// DefaultRowOptions returns the header block of the attendance templates:
// rows 5 to 8, columns 1 to 14.
func DefaultRowOptions() RowOptions {
	return RowOptions{
		FromRow: 5,
		ToRow:   8,
		FromCol: 1,
		ToCol:   14,
	}
}

// RawOptions configures ScanRaw.
type RawOptions struct {
	// RowLimit stops the scan at the first row numbered above it.
	// Zero or negative scans every row.
	RowLimit int
	Logger   *logrus.Logger
}

// DefaultRawOptions returns default raw scan options.
func DefaultRawOptions() RawOptions {
	return RawOptions{
		RowLimit: 25,
	}
}

func loggerOrDiscard(l *logrus.Logger) *logrus.Logger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
