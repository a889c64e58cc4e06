package parser

import (
	"github.com/xuri/excelize/v2"
)

// SheetBounds returns the last used row and column of a sheet (1-based).
// The declared dimension can be stale, so the larger of it and the data
// bounds wins. An empty sheet yields 0, 0.
func SheetBounds(f *excelize.File, sheetName string) (maxRow, maxCol int, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, 0, err
	}

	_, lastRow, _, lastCol := findDataBounds(rows)
	maxRow, maxCol = lastRow+1, lastCol+1

	dimension, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return 0, 0, err
	}
	// A single-cell dimension is what writers emit for empty sheets.
	if area := ParseRange(dimension); area != nil && (area.R1 != area.R2 || area.C1 != area.C2) {
		maxRow = max(maxRow, area.R2)
		maxCol = max(maxCol, area.C2)
	}

	return maxRow, maxCol, nil
}

// findDataBounds finds the bounding box of non-empty cells (0-based).
// All four values are -1 when there is no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
