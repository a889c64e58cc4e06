package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
	"golang.org/x/text/encoding/charmap"
)

func TestWriteRawPreview(t *testing.T) {
	preview := &models.RawPreview{
		Rows: []models.RawRow{
			{R: 1, Cells: []models.RawCell{{Ref: "A1", Value: "Name"}, {Ref: "B1", Value: "Score"}}},
			{R: 2, Cells: []models.RawCell{{Ref: "A2", Value: "STR#5"}}},
		},
		MergedCells: []string{"A1:B1", "C3:C4"},
	}

	var buf bytes.Buffer
	if err := WriteRawPreview(&buf, preview); err != nil {
		t.Fatalf("WriteRawPreview failed: %v", err)
	}

	expected := "Excel Content Preview:\n" +
		"Row 1: A1: Name | B1: Score\n" +
		"Row 2: A2: STR#5\n" +
		"\nMerged Cells:\n" +
		"A1:B1\n" +
		"C3:C4\n"
	if buf.String() != expected {
		t.Errorf("Unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteRawPreviewNoMergedCells(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRawPreview(&buf, &models.RawPreview{MergedCells: []string{}}); err != nil {
		t.Fatalf("WriteRawPreview failed: %v", err)
	}
	if buf.String() != "Excel Content Preview:\n" {
		t.Errorf("Expected header only, got %q", buf.String())
	}
}

func TestWriteRowDump(t *testing.T) {
	dump := &models.RowDump{
		BookName:  "form.xlsx",
		SheetName: "Sheet1",
		Rows: []models.RowCells{
			{R: 5, Cells: []models.CellEntry{
				{C: 1, Value: "Week 1", Present: true},
				{C: 2},
			}},
		},
	}

	var buf bytes.Buffer
	if err := WriteRowDump(&buf, dump); err != nil {
		t.Fatalf("WriteRowDump failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Row 5: 1:Week 1 | 2:None\n") {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	info := &models.WorkbookInfo{
		BookName:    "form.xlsx",
		SheetNames:  []string{"Sheet1", "Notes"},
		ActiveSheet: "Sheet1",
		Sheets: []models.SheetInfo{{
			Name:        "Sheet1",
			MaxRow:      6,
			MaxColumn:   3,
			MergedCells: []models.MergedRange{{Ref: "A1:D1"}},
			Preview: []models.PreviewRow{
				{R: 1, Values: []string{"Name", "Score", ""}},
			},
		}},
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, info); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Sheet Names: [Sheet1, Notes]\n",
		"Max Row: 6\n",
		"Merged Cells:\nA1:D1\n",
		"Content Preview (First 1 rows):\nName\tScore\t\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestWriteTemplate(t *testing.T) {
	info := &models.TemplateInfo{
		SheetName: "Sheet1",
		Columns:   []models.ColumnDimension{{Column: "B", Width: 30.5}},
		Rows: []models.RowDimension{
			{R: 1, Height: 15, Default: true},
			{R: 2, Height: 40},
		},
		Cells: []models.CellStyleInfo{
			{
				Ref:    "A1",
				Value:  "Title",
				Font:   models.FontInfo{Name: "Arial", Size: 14, Bold: true, Color: "Theme 1"},
				Fill:   models.FillInfo{Type: "solid", Color: "FFFF00"},
				Border: models.BorderInfo{Left: "thin"},
			},
			{Ref: "B2", Font: models.FontInfo{Color: "None"}},
		},
	}

	var buf bytes.Buffer
	if err := WriteTemplate(&buf, info); err != nil {
		t.Fatalf("WriteTemplate failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Column B: Width=30.5\n",
		"Row 1: Default Height\n",
		"Row 2: Height=40\n",
		"Cell A1:\n  Value: Title\n  Font: Name=Arial, Size=14, Bold=true, Color=Theme 1\n",
		"  Fill: Type=solid, Color=FFFF00\n",
		"  Border: Left=thin, Right=None, Top=None, Bottom=None\n",
		"Cell B2:\n  Font: Name=None, Size=0, Bold=false, Color=None\n  Align: H=None, V=None, Wrap=false, Rotation=0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Count(out, "Fill:") != 1 || strings.Count(out, "Border:") != 1 {
		t.Errorf("Fill and border should only print for A1:\n%s", out)
	}
}

func TestToJSON(t *testing.T) {
	preview := &models.RawPreview{Source: "sheet1.xml", Rows: []models.RawRow{}, MergedCells: []string{}}

	data, err := ToJSON(preview, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded["source"] != "sheet1.xml" {
		t.Errorf("Expected source field, got %v", decoded)
	}

	pretty, err := ToJSON(preview, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"source\"") {
		t.Errorf("Expected indented JSON, got %s", pretty)
	}
}

func TestNewEncodedWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewEncodedWriter(&buf, "ISO-8859-1")
	if err != nil {
		t.Fatalf("NewEncodedWriter failed: %v", err)
	}
	if _, err := w.Write([]byte("café ☃")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !strings.HasPrefix(string(decoded), "café ") {
		t.Errorf("Expected 'café ' prefix, got %q", decoded)
	}
	if len(buf.Bytes()) != 6 {
		t.Errorf("Expected 6 single-byte characters, got %d bytes", len(buf.Bytes()))
	}
}

func TestNewEncodedWriterUTF8(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf8"} {
		var buf bytes.Buffer
		w, err := NewEncodedWriter(&buf, name)
		if err != nil {
			t.Fatalf("NewEncodedWriter(%q) failed: %v", name, err)
		}
		w.Write([]byte("كشف"))
		w.Close()
		if buf.String() != "كشف" {
			t.Errorf("NewEncodedWriter(%q): expected passthrough, got %q", name, buf.String())
		}
	}
}

func TestNewEncodedWriterUnknown(t *testing.T) {
	if _, err := NewEncodedWriter(&bytes.Buffer{}, "no-such-charset"); err == nil {
		t.Error("Expected error for unknown encoding")
	}
}
