package xlinspect

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/rawxml"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = rawxml.ErrSheetNotFound

// InspectionError represents an error while reading one part of a sheet.
type InspectionError struct {
	SheetName string
	Component string // "bounds", "merged_cells", "preview", "dimensions", "styles", "rows", "worksheet"
	Err       error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("inspection error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// NewInspectionError creates a new InspectionError.
func NewInspectionError(sheetName, component string, err error) *InspectionError {
	return &InspectionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
