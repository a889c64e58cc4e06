package parser

import (
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// lastColumn is the rightmost column a worksheet can hold. Its width is
// used as the sheet default.
const lastColumn = "XFD"

// ExtractColumnWidths returns the columns among 1..maxCol whose width
// differs from the sheet default.
func ExtractColumnWidths(f *excelize.File, sheetName string, maxCol int) ([]models.ColumnDimension, error) {
	defaultWidth, err := f.GetColWidth(sheetName, lastColumn)
	if err != nil {
		return nil, err
	}

	var result []models.ColumnDimension
	for c := 1; c <= maxCol; c++ {
		col, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return nil, err
		}
		width, err := f.GetColWidth(sheetName, col)
		if err != nil {
			return nil, err
		}
		if width != defaultWidth {
			result = append(result, models.ColumnDimension{Column: col, Width: width})
		}
	}

	return result, nil
}

// ExtractRowHeights returns the height of rows 1..rows. Rows without a
// custom height report the sheet default with Default set.
func ExtractRowHeights(f *excelize.File, sheetName string, rows int) ([]models.RowDimension, error) {
	defaultHeight, err := f.GetRowHeight(sheetName, excelize.TotalRows)
	if err != nil {
		return nil, err
	}

	result := make([]models.RowDimension, 0, rows)
	for r := 1; r <= rows; r++ {
		height, err := f.GetRowHeight(sheetName, r)
		if err != nil {
			return nil, err
		}
		result = append(result, models.RowDimension{
			R:       r,
			Height:  height,
			Default: height == defaultHeight,
		})
	}

	return result, nil
}
