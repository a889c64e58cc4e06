package xlinspect

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

// InspectTemplate reports the layout of one sheet: merged cells, explicit
// column widths, leading row heights and the styling of the top-left block
// of cells.
func InspectTemplate(path string, opts TemplateOptions) (*models.TemplateInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := loggerOrDiscard(opts.Logger)

	targets, err := selectSheets(f.GetSheetList(), activeSheet(f), opts.SheetName, false)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrSheetNotFound
	}
	sheetName := targets[0]

	info := &models.TemplateInfo{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
	}

	if info.MergedCells, err = parser.ExtractMergedCells(f, sheetName); err != nil {
		warn(log, NewInspectionError(sheetName, "merged_cells", err))
	}

	_, maxCol, err := parser.SheetBounds(f, sheetName)
	if err != nil {
		warn(log, NewInspectionError(sheetName, "bounds", err))
	}
	if info.Columns, err = parser.ExtractColumnWidths(f, sheetName, max(maxCol, opts.DetailCols)); err != nil {
		warn(log, NewInspectionError(sheetName, "dimensions", err))
	}
	if info.Rows, err = parser.ExtractRowHeights(f, sheetName, opts.HeightRows); err != nil {
		warn(log, NewInspectionError(sheetName, "dimensions", err))
	}

	area := models.CellRange{R1: 1, C1: 1, R2: opts.DetailRows, C2: opts.DetailCols}
	if info.Cells, err = parser.ExtractCellStyles(f, sheetName, area); err != nil {
		warn(log, NewInspectionError(sheetName, "styles", err))
	}

	log.WithFields(logrus.Fields{
		"sheet":   sheetName,
		"columns": len(info.Columns),
		"cells":   len(info.Cells),
	}).Debug("inspected template")

	return info, nil
}
