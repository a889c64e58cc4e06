package rawxml

import (
	"strconv"
	"strings"
)

// Cell type tags from the t attribute of a c element.
const (
	TypeSharedString = "s"
	TypeInlineString = "inlineStr"
)

// CellRecord is a cell as stored in a worksheet part.
type CellRecord struct {
	// Ref is the cell reference, e.g. "B3".
	Ref string
	// Type is the t attribute; empty when absent.
	Type string
	// Value is the raw stored value; nil when the cell has no value.
	Value *string
}

// ResolveValue returns the display value of a cell. It never fails: a shared
// string index that is not a valid position in sst resolves to a placeholder
// of the form "STR#<index>".
func ResolveValue(c CellRecord, sst SharedStrings) string {
	if c.Value == nil {
		return ""
	}
	raw := *c.Value
	if c.Type != TypeSharedString {
		return raw
	}

	raw = strings.TrimSpace(raw)
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return placeholder(raw)
	}
	if s, ok := sst.At(idx); ok {
		return s
	}
	return placeholder(raw)
}

func placeholder(index string) string {
	return "STR#" + index
}
