package parser

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// borderStyleNames maps excelize border style indexes to SpreadsheetML names.
var borderStyleNames = []string{
	"",
	"thin",
	"medium",
	"dashed",
	"dotted",
	"thick",
	"double",
	"hair",
	"mediumDashed",
	"dashDot",
	"mediumDashDot",
	"dashDotDot",
	"mediumDashDotDot",
	"slantDashDot",
}

// fillPatternNames maps excelize fill pattern indexes to SpreadsheetML names.
var fillPatternNames = []string{
	"",
	"solid",
	"mediumGray",
	"darkGray",
	"lightGray",
	"darkHorizontal",
	"darkVertical",
	"darkDown",
	"darkUp",
	"darkGrid",
	"darkTrellis",
	"lightHorizontal",
	"lightVertical",
	"lightDown",
	"lightUp",
	"lightGrid",
	"lightTrellis",
	"gray125",
	"gray0625",
}

// ExtractCellStyles extracts value and styling for the cells inside area.
// Cells that have neither a value nor a style are skipped.
func ExtractCellStyles(f *excelize.File, sheetName string, area models.CellRange) ([]models.CellStyleInfo, error) {
	var result []models.CellStyleInfo
	for r := area.R1; r <= area.R2; r++ {
		for c := area.C1; c <= area.C2; c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}

			value, err := f.GetCellValue(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			styleID, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if value == "" && styleID == 0 {
				continue
			}

			style, err := f.GetStyle(styleID)
			if err != nil {
				return nil, fmt.Errorf("style %d of %s: %w", styleID, cellName, err)
			}

			info := convertStyle(style)
			info.Ref = cellName
			info.Value = value
			result = append(result, info)
		}
	}

	return result, nil
}

// convertStyle flattens an excelize style into the reported fields.
func convertStyle(style *excelize.Style) models.CellStyleInfo {
	info := models.CellStyleInfo{
		Font: models.FontInfo{Color: "None"},
	}
	if style == nil {
		return info
	}

	if font := style.Font; font != nil {
		info.Font.Name = font.Family
		info.Font.Size = font.Size
		info.Font.Bold = font.Bold
		switch {
		case font.Color != "":
			info.Font.Color = font.Color
		case font.ColorTheme != nil:
			info.Font.Color = fmt.Sprintf("Theme %d", *font.ColorTheme)
		}
	}

	info.Fill = convertFill(style.Fill)

	for _, border := range style.Border {
		name := lookupName(borderStyleNames, border.Style)
		switch border.Type {
		case "left":
			info.Border.Left = name
		case "right":
			info.Border.Right = name
		case "top":
			info.Border.Top = name
		case "bottom":
			info.Border.Bottom = name
		}
	}

	if align := style.Alignment; align != nil {
		info.Alignment = models.AlignmentInfo{
			Horizontal: align.Horizontal,
			Vertical:   align.Vertical,
			Wrap:       align.WrapText,
			Rotation:   align.TextRotation,
		}
	}

	return info
}

func convertFill(fill excelize.Fill) models.FillInfo {
	var info models.FillInfo
	switch fill.Type {
	case "pattern":
		info.Type = lookupName(fillPatternNames, fill.Pattern)
	case "gradient":
		info.Type = "gradient"
	}
	if info.Type == "" {
		return models.FillInfo{}
	}

	info.Color = "None"
	if len(fill.Color) > 0 && fill.Color[0] != "" {
		info.Color = fill.Color[0]
	}
	return info
}

func lookupName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}
