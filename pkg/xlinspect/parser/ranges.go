package parser

import (
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMergedCells extracts the merged-cell ranges of a sheet with the
// value of each range's top-left cell.
func ExtractMergedCells(f *excelize.File, sheetName string) ([]models.MergedRange, error) {
	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.MergedRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		merged := models.MergedRange{
			Ref:   ref,
			Value: strings.TrimSpace(mc.GetCellValue()),
		}
		if area := ParseRange(ref); area != nil {
			merged.CellRange = *area
		}
		result = append(result, merged)
	}

	return result, nil
}

// ParseRange parses a range string like $A$1:$D$10 or A1:D10.
// A single cell reference yields a one-cell range. It returns nil when the
// string is not a valid reference.
func ParseRange(rangeStr string) *models.CellRange {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
