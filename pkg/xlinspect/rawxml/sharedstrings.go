// Package rawxml reads SpreadsheetML parts directly with encoding/xml,
// without going through a spreadsheet object model.
package rawxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// SharedStrings is the shared string table of a workbook. Cells of type "s"
// refer to its entries by zero-based position. It is immutable once built.
type SharedStrings struct {
	items []string
}

// NewSharedStrings builds a table from the given entries.
func NewSharedStrings(items ...string) SharedStrings {
	return SharedStrings{items: append([]string(nil), items...)}
}

// Len returns the number of entries in the table.
func (s SharedStrings) Len() int {
	return len(s.items)
}

// At returns the entry at index i. ok is false when i is out of range.
func (s SharedStrings) At(i int) (string, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

// Strings returns a copy of the table entries in document order.
func (s SharedStrings) Strings() []string {
	return append([]string(nil), s.items...)
}

// LoadSharedStrings reads a sharedStrings.xml part from disk.
// A missing file is not an error: workbooks without string literals have no
// shared strings part, so an empty table is returned.
func LoadSharedStrings(path string) (SharedStrings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SharedStrings{}, nil
		}
		return SharedStrings{}, err
	}

	sst, err := ParseSharedStrings(bytes.NewReader(data))
	if err != nil {
		return SharedStrings{}, fmt.Errorf("parse shared strings %s: %w", path, err)
	}
	return sst, nil
}

// ParseSharedStrings parses a shared strings document. Each si element
// yields one entry holding the text of its t elements, including rich text
// runs; phonetic runs (rPh) are skipped.
func ParseSharedStrings(r io.Reader) (SharedStrings, error) {
	var items []string

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SharedStrings{}, err
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			text, err := readStringItem(decoder)
			if err != nil {
				return SharedStrings{}, err
			}
			items = append(items, text)
		}
	}

	return SharedStrings{items: items}, nil
}

// readStringItem reads the content of an si or is element up to and
// including its end tag and returns the visible text.
func readStringItem(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	inText := false
	phonetic := 0

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t":
				inText = phonetic == 0
			case "rPh":
				phonetic++
			}
		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPh":
				phonetic--
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
