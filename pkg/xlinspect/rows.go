package xlinspect

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
)

// InspectRows dumps a rectangular block of cell values from one sheet.
func InspectRows(path string, opts RowOptions) (*models.RowDump, error) {
	area := models.CellRange{R1: opts.FromRow, C1: opts.FromCol, R2: opts.ToRow, C2: opts.ToCol}
	if err := validateArea(area); err != nil {
		return nil, err
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	targets, err := selectSheets(f.GetSheetList(), activeSheet(f), opts.SheetName, false)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrSheetNotFound
	}
	sheetName := targets[0]

	rows, err := parser.ExtractRowRange(f, sheetName, area)
	if err != nil {
		return nil, NewInspectionError(sheetName, "rows", err)
	}

	loggerOrDiscard(opts.Logger).WithField("sheet", sheetName).Debugf("dumped %d rows", len(rows))

	return &models.RowDump{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Rows:      rows,
	}, nil
}

func validateArea(area models.CellRange) error {
	if area.R1 < 1 || area.C1 < 1 || area.R2 < area.R1 || area.C2 < area.C1 {
		return fmt.Errorf("invalid cell block: rows %d-%d, columns %d-%d", area.R1, area.R2, area.C1, area.C2)
	}
	return nil
}
