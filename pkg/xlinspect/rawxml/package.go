package rawxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Well-known part names inside a SpreadsheetML package.
const (
	WorkbookPart      = "xl/workbook.xml"
	WorkbookRelsPart  = "xl/_rels/workbook.xml.rels"
	SharedStringsPart = "xl/sharedStrings.xml"
)

// ErrSheetNotFound is returned when a sheet name is not declared in the
// workbook part.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetEntry maps a sheet name to its worksheet part.
type SheetEntry struct {
	Name string
	Part string
}

// Package gives access to the parts of an xlsx file, either zipped or
// already unpacked into a directory.
type Package struct {
	zr     *zip.ReadCloser
	dir    string
	sheets []SheetEntry
	sst    string
}

// OpenPackage opens an .xlsx archive or the root directory of an unpacked
// one and reads the workbook's sheet list.
func OpenPackage(name string) (*Package, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}

	p := &Package{}
	if info.IsDir() {
		p.dir = name
	} else {
		zr, err := zip.OpenReader(name)
		if err != nil {
			return nil, err
		}
		p.zr = zr
	}

	if err := p.loadWorkbook(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	if p.zr == nil {
		return nil
	}
	err := p.zr.Close()
	p.zr = nil
	return err
}

// Sheets returns the sheets declared in the workbook, in tab order.
func (p *Package) Sheets() []SheetEntry {
	return append([]SheetEntry(nil), p.sheets...)
}

// SheetNames returns the sheet names in tab order.
func (p *Package) SheetNames() []string {
	names := make([]string, len(p.sheets))
	for i, s := range p.sheets {
		names[i] = s.Name
	}
	return names
}

// SheetPart returns the worksheet part for the named sheet. An empty name
// selects the first sheet.
func (p *Package) SheetPart(name string) (string, error) {
	if len(p.sheets) == 0 {
		return "", fmt.Errorf("%w: workbook declares no sheets", ErrSheetNotFound)
	}
	if name == "" {
		return p.sheets[0].Part, nil
	}
	for _, s := range p.sheets {
		if s.Name == name {
			return s.Part, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// ReadPart returns the content of a part. ok is false when the part does not
// exist.
func (p *Package) ReadPart(name string) (data []byte, ok bool, err error) {
	if p.zr != nil {
		for _, f := range p.zr.File {
			if f.Name == name {
				rc, err := f.Open()
				if err != nil {
					return nil, false, err
				}
				defer rc.Close()
				data, err := io.ReadAll(rc)
				if err != nil {
					return nil, false, err
				}
				return data, true, nil
			}
		}
		return nil, false, nil
	}

	data, err = os.ReadFile(filepath.Join(p.dir, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// SharedStrings loads the workbook's shared string table. A package without
// a shared strings part yields an empty table.
func (p *Package) SharedStrings() (SharedStrings, error) {
	data, ok, err := p.ReadPart(p.sst)
	if err != nil || !ok {
		return SharedStrings{}, err
	}
	sst, err := ParseSharedStrings(bytes.NewReader(data))
	if err != nil {
		return SharedStrings{}, fmt.Errorf("parse shared strings %s: %w", p.sst, err)
	}
	return sst, nil
}

// Worksheet returns a Scanner over the named sheet.
func (p *Package) Worksheet(name string, sst SharedStrings, opts ScanOptions) (*Scanner, error) {
	part, err := p.SheetPart(name)
	if err != nil {
		return nil, err
	}
	data, ok, err := p.ReadPart(part)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("worksheet part %s: %w", part, fs.ErrNotExist)
	}
	return NewScanner(bytes.NewReader(data), sst, opts), nil
}

func (p *Package) loadWorkbook() error {
	p.sst = SharedStringsPart

	workbookXML, ok, err := p.ReadPart(WorkbookPart)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", WorkbookPart, fs.ErrNotExist)
	}
	sheets := parseWorkbookSheets(workbookXML)

	relsXML, ok, err := p.ReadPart(WorkbookRelsPart)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", WorkbookRelsPart, fs.ErrNotExist)
	}

	for _, rel := range parseRelationships(relsXML) {
		switch {
		case strings.HasSuffix(rel.Type, "/worksheet"):
			for i := range sheets {
				if sheets[i].rID == rel.ID {
					sheets[i].Part = resolveRelativePath(rel.Target, "xl")
				}
			}
		case strings.HasSuffix(rel.Type, "/sharedStrings"):
			p.sst = resolveRelativePath(rel.Target, "xl")
		}
	}

	for _, s := range sheets {
		if s.Part != "" {
			p.sheets = append(p.sheets, s.SheetEntry)
		}
	}
	return nil
}

type workbookSheet struct {
	SheetEntry
	rID string
}

type relationship struct {
	ID     string
	Type   string
	Target string
}

// parseWorkbookSheets returns the sheet elements of workbook.xml in order.
func parseWorkbookSheets(data []byte) []workbookSheet {
	var result []workbookSheet
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result = append(result, workbookSheet{SheetEntry: SheetEntry{Name: name}, rID: rID})
			}
		}
	}

	return result
}

func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			result = append(result, relationship{
				ID:     attrValue(se, "Id"),
				Type:   attrValue(se, "Type"),
				Target: attrValue(se, "Target"),
			})
		}
	}

	return result
}

// resolveRelativePath turns a relationship target into a part name.
// Absolute targets are rooted at the package; relative ones at baseDir.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
