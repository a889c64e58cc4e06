package xlinspect

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/rawxml"
)

// RawSource names the worksheet that ScanRaw reads. Set either PackagePath
// or WorksheetPath.
type RawSource struct {
	// PackagePath is an .xlsx file or the root of an unpacked one.
	PackagePath string
	// SheetName selects a sheet inside the package. Empty selects the first.
	SheetName string

	// WorksheetPath is a worksheet part on disk, e.g. xl/worksheets/sheet1.xml.
	WorksheetPath string
	// SharedStringsPath is the shared strings part on disk. A missing file
	// is treated as an empty table.
	SharedStringsPath string
}

// ScanRaw reads worksheet XML directly, resolving shared strings by index,
// and collects the scanned rows and merged ranges.
func ScanRaw(src RawSource, opts RawOptions) (*models.RawPreview, error) {
	log := loggerOrDiscard(opts.Logger)
	scanOpts := rawxml.ScanOptions{RowLimit: opts.RowLimit}

	var (
		sc      *rawxml.Scanner
		sst     rawxml.SharedStrings
		preview = &models.RawPreview{Rows: []models.RawRow{}}
	)

	switch {
	case src.PackagePath != "":
		if err := checkExists(src.PackagePath); err != nil {
			return nil, err
		}
		p, err := rawxml.OpenPackage(src.PackagePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, src.PackagePath, err)
		}
		defer p.Close()

		sheetName := src.SheetName
		if names := p.SheetNames(); sheetName == "" && len(names) > 0 {
			sheetName = names[0]
		}

		if sst, err = p.SharedStrings(); err != nil {
			return nil, err
		}
		if sc, err = p.Worksheet(sheetName, sst, scanOpts); err != nil {
			return nil, err
		}
		preview.Source = filepath.Base(src.PackagePath)
		preview.SheetName = sheetName

	case src.WorksheetPath != "":
		if err := checkExists(src.WorksheetPath); err != nil {
			return nil, err
		}

		var err error
		if src.SharedStringsPath != "" {
			if sst, err = rawxml.LoadSharedStrings(src.SharedStringsPath); err != nil {
				return nil, err
			}
		}
		if sc, err = rawxml.OpenWorksheet(src.WorksheetPath, sst, scanOpts); err != nil {
			return nil, err
		}
		preview.Source = src.WorksheetPath

	default:
		return nil, errors.New("no worksheet to scan: set a package or a worksheet path")
	}

	preview.SharedStrings = sst.Len()
	log.WithFields(logrus.Fields{
		"source":         preview.Source,
		"shared_strings": sst.Len(),
		"row_limit":      opts.RowLimit,
	}).Debug("scanning worksheet")

	for row := range sc.All() {
		raw := models.RawRow{R: row.Number, Cells: make([]models.RawCell, len(row.Cells))}
		for i, c := range row.Cells {
			raw.Cells[i] = models.RawCell{Ref: c.Ref, Value: c.Value}
		}
		preview.Rows = append(preview.Rows, raw)
	}
	if err := sc.Err(); err != nil {
		return nil, NewInspectionError(preview.SheetName, "worksheet", err)
	}

	merged, err := sc.MergedRanges()
	if err != nil {
		return nil, NewInspectionError(preview.SheetName, "merged_cells", err)
	}
	preview.MergedCells = merged

	return preview, nil
}
