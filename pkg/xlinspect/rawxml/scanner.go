package rawxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
)

// ScanOptions bounds a worksheet scan.
type ScanOptions struct {
	// RowLimit stops the scan at the first row numbered above it.
	// Zero or negative scans every row.
	RowLimit int
}

// ResolvedCell is a cell reference paired with its display value.
type ResolvedCell struct {
	Ref   string
	Value string
}

// Row is one worksheet row with its cells in document order.
type Row struct {
	// Number is the 1-based row number from the r attribute.
	Number int
	Cells  []ResolvedCell
}

// Scanner walks the rows of a worksheet part. Rows are decoded on demand and
// cannot be replayed; use a new Scanner to read the part again.
//
//	sc := rawxml.NewScanner(r, sst, rawxml.ScanOptions{RowLimit: 25})
//	for sc.Next() {
//		row := sc.Row()
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type Scanner struct {
	data    []byte
	decoder *xml.Decoder
	sst     SharedStrings
	opts    ScanOptions

	row     Row
	lastRow int
	done    bool
	err     error
}

// NewScanner reads the whole worksheet document from r. A read error is
// reported by Err after the first call to Next.
func NewScanner(r io.Reader, sst SharedStrings, opts ScanOptions) *Scanner {
	data, err := io.ReadAll(r)
	s := &Scanner{
		data: data,
		sst:  sst,
		opts: opts,
	}
	if err != nil {
		s.done = true
		s.err = err
		return s
	}
	s.decoder = xml.NewDecoder(bytes.NewReader(data))
	return s
}

// OpenWorksheet reads the worksheet part at path and returns a Scanner over
// it. The file is closed before OpenWorksheet returns.
func OpenWorksheet(path string, sst SharedStrings, opts ScanOptions) (*Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(bytes.NewReader(data), sst, opts), nil
}

// Next advances to the next row. It returns false when the sheet data ends,
// the row limit is exceeded or an error occurs.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	for {
		token, err := s.decoder.Token()
		if err == io.EOF {
			s.finish(nil)
			return false
		}
		if err != nil {
			s.finish(err)
			return false
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "row" {
				continue
			}
			row, err := s.readRow(t)
			if err != nil {
				s.finish(err)
				return false
			}
			s.lastRow = row.Number
			if s.opts.RowLimit > 0 && row.Number > s.opts.RowLimit {
				s.finish(nil)
				return false
			}
			s.row = row
			return true
		case xml.EndElement:
			if t.Name.Local == "sheetData" {
				s.finish(nil)
				return false
			}
		}
	}
}

// Row returns the row read by the last successful call to Next.
func (s *Scanner) Row() Row {
	return s.row
}

// Err returns the first error met by the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// All returns an iterator over the remaining rows. Check Err once the
// iteration ends.
func (s *Scanner) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for s.Next() {
			if !yield(s.Row()) {
				return
			}
		}
	}
}

// MergedRanges returns the ref of every mergeCell declared in the document,
// in document order. A sheet without a mergeCells element yields an empty
// slice. It does not disturb row iteration.
func (s *Scanner) MergedRanges() ([]string, error) {
	if s.decoder == nil {
		return nil, s.err
	}

	ranges := []string{}
	inMerge := false

	decoder := xml.NewDecoder(bytes.NewReader(s.data))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "mergeCells":
				inMerge = true
			case "mergeCell":
				if inMerge {
					if ref := attrValue(t, "ref"); ref != "" {
						ranges = append(ranges, ref)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "mergeCells" {
				return ranges, nil
			}
		}
	}

	return ranges, nil
}

func (s *Scanner) finish(err error) {
	s.done = true
	s.row = Row{}
	if err != nil && s.err == nil {
		s.err = err
	}
}

// readRow reads a row element. Rows without a usable r attribute follow the
// previous row.
func (s *Scanner) readRow(start xml.StartElement) (Row, error) {
	row := Row{Number: s.lastRow + 1}
	if r := attrValue(start, "r"); r != "" {
		n, err := strconv.Atoi(r)
		if err != nil {
			return Row{}, fmt.Errorf("row %q: invalid row number: %w", r, err)
		}
		row.Number = n
	}

	depth := 1
	for depth > 0 {
		token, err := s.decoder.Token()
		if err != nil {
			return Row{}, unexpectedEOF(err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "c" {
				c, err := readCell(s.decoder, t)
				if err != nil {
					return Row{}, err
				}
				row.Cells = append(row.Cells, ResolvedCell{
					Ref:   c.Ref,
					Value: ResolveValue(c, s.sst),
				})
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return row, nil
}

// readCell reads a c element up to and including its end tag.
func readCell(decoder *xml.Decoder, start xml.StartElement) (CellRecord, error) {
	c := CellRecord{
		Ref:  attrValue(start, "r"),
		Type: attrValue(start, "t"),
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return CellRecord{}, unexpectedEOF(err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "v":
				text, err := readElementText(decoder)
				if err != nil {
					return CellRecord{}, unexpectedEOF(err)
				}
				c.Value = &text
				depth--
			case "is":
				text, err := readStringItem(decoder)
				if err != nil {
					return CellRecord{}, err
				}
				c.Value = &text
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return c, nil
}

// readElementText returns the character data of the current element up to
// and including its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
