package parser

import (
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPreview extracts the top-left block of a sheet.
// It returns at most maxRows rows, each holding exactly maxCols trimmed
// values. Rows after the last non-empty row are not returned.
func ExtractPreview(f *excelize.File, sheetName string, maxRows, maxCols int) ([]models.PreviewRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.PreviewRow
	for rowIdx, row := range rows {
		if rowIdx >= maxRows {
			break
		}

		values := make([]string, maxCols)
		for colIdx := 0; colIdx < maxCols && colIdx < len(row); colIdx++ {
			values[colIdx] = strings.TrimSpace(row[colIdx])
		}

		result = append(result, models.PreviewRow{
			R:      rowIdx + 1, // 1-based row index
			Values: values,
		})
	}

	return result, nil
}

// ExtractRowRange extracts every cell inside area, row by row.
// Values are trimmed and line breaks are flattened so that each row prints
// on one line.
func ExtractRowRange(f *excelize.File, sheetName string, area models.CellRange) ([]models.RowCells, error) {
	var result []models.RowCells
	for r := area.R1; r <= area.R2; r++ {
		row := models.RowCells{R: r}
		for c := area.C1; c <= area.C2; c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			value, err := f.GetCellValue(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			value = flattenValue(value)
			row.Cells = append(row.Cells, models.CellEntry{
				C:       c,
				Value:   value,
				Present: value != "",
			})
		}
		result = append(result, row)
	}

	return result, nil
}

// flattenValue trims a display value and replaces line breaks with spaces.
func flattenValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
