package xlinspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect summarizes a workbook: its sheet list and, for the selected
// sheets, the used range, merged cells and a preview of values.
func Inspect(path string, opts Options) (*models.WorkbookInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := loggerOrDiscard(opts.Logger)

	sheetList := f.GetSheetList()
	active := activeSheet(f)
	targets, err := selectSheets(sheetList, active, opts.SheetName, opts.AllSheets)
	if err != nil {
		return nil, err
	}

	info := &models.WorkbookInfo{
		BookName:    filepath.Base(path),
		SheetNames:  sheetList,
		ActiveSheet: active,
	}

	for _, sheetName := range targets {
		sheet := models.SheetInfo{Name: sheetName}

		maxRow, maxCol, err := parser.SheetBounds(f, sheetName)
		if err != nil {
			// Log warning and continue without bounds
			warn(log, NewInspectionError(sheetName, "bounds", err))
		}
		sheet.MaxRow, sheet.MaxColumn = maxRow, maxCol

		merged, err := parser.ExtractMergedCells(f, sheetName)
		if err != nil {
			warn(log, NewInspectionError(sheetName, "merged_cells", err))
		}
		sheet.MergedCells = merged

		preview, err := parser.ExtractPreview(f, sheetName, opts.PreviewRows, opts.PreviewCols)
		if err != nil {
			warn(log, NewInspectionError(sheetName, "preview", err))
		}
		sheet.Preview = preview

		log.WithFields(logrus.Fields{
			"sheet":  sheetName,
			"rows":   sheet.MaxRow,
			"cols":   sheet.MaxColumn,
			"merged": len(sheet.MergedCells),
		}).Debug("inspected sheet")

		info.Sheets = append(info.Sheets, sheet)
	}

	return info, nil
}

// openWorkbook opens an xlsx file, telling a missing file apart from one
// that cannot be read as a workbook.
func openWorkbook(path string) (*excelize.File, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return f, nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

// activeSheet returns the name of the active sheet, falling back to the
// first sheet.
func activeSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// selectSheets resolves which sheets to inspect.
func selectSheets(sheetList []string, active, sheetName string, all bool) ([]string, error) {
	switch {
	case all:
		return sheetList, nil
	case sheetName != "":
		if !slices.Contains(sheetList, sheetName) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
		}
		return []string{sheetName}, nil
	case active != "":
		return []string{active}, nil
	default:
		return nil, nil
	}
}

func warn(log *logrus.Logger, err *InspectionError) {
	log.WithFields(logrus.Fields{
		"sheet":     err.SheetName,
		"component": err.Component,
	}).WithError(err.Err).Warn("skipping unreadable sheet part")
}
