package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/models"
)

// WriteSummary writes the workbook summary with a tab-delimited preview of
// each inspected sheet.
func WriteSummary(w io.Writer, info *models.WorkbookInfo) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sheet Names: [%s]\n", strings.Join(info.SheetNames, ", "))
	fmt.Fprintf(&sb, "Active Sheet: %s\n", info.ActiveSheet)

	for _, sheet := range info.Sheets {
		fmt.Fprintf(&sb, "\nSheet Title: %s\n", sheet.Name)
		fmt.Fprintf(&sb, "Max Row: %d\n", sheet.MaxRow)
		fmt.Fprintf(&sb, "Max Column: %d\n", sheet.MaxColumn)

		sb.WriteString("\nMerged Cells:\n")
		writeMerged(&sb, sheet.MergedCells)

		fmt.Fprintf(&sb, "\nContent Preview (First %d rows):\n", len(sheet.Preview))
		for _, row := range sheet.Preview {
			sb.WriteString(strings.Join(row.Values, "\t"))
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTemplate writes the layout and cell styling of a template sheet.
func WriteTemplate(w io.Writer, info *models.TemplateInfo) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sheet Name: %s\n", info.SheetName)

	sb.WriteString("\nMerged Cells:\n")
	writeMerged(&sb, info.MergedCells)

	sb.WriteString("\nColumn Dimensions:\n")
	for _, col := range info.Columns {
		fmt.Fprintf(&sb, "Column %s: Width=%s\n", col.Column, formatFloat(col.Width))
	}

	fmt.Fprintf(&sb, "\nRow Dimensions (First %d):\n", len(info.Rows))
	for _, row := range info.Rows {
		if row.Default {
			fmt.Fprintf(&sb, "Row %d: Default Height\n", row.R)
			continue
		}
		fmt.Fprintf(&sb, "Row %d: Height=%s\n", row.R, formatFloat(row.Height))
	}

	sb.WriteString("\nCell Details:\n")
	for _, cell := range info.Cells {
		fmt.Fprintf(&sb, "Cell %s:\n", cell.Ref)
		if cell.Value != "" {
			fmt.Fprintf(&sb, "  Value: %s\n", cell.Value)
		}
		fmt.Fprintf(&sb, "  Font: Name=%s, Size=%s, Bold=%t, Color=%s\n",
			orNone(cell.Font.Name), formatFloat(cell.Font.Size), cell.Font.Bold, orNone(cell.Font.Color))
		if cell.Fill.Type != "" {
			fmt.Fprintf(&sb, "  Fill: Type=%s, Color=%s\n", cell.Fill.Type, orNone(cell.Fill.Color))
		}
		if cell.HasBorder() {
			b := cell.Border
			fmt.Fprintf(&sb, "  Border: Left=%s, Right=%s, Top=%s, Bottom=%s\n",
				orNone(b.Left), orNone(b.Right), orNone(b.Top), orNone(b.Bottom))
		}
		a := cell.Alignment
		fmt.Fprintf(&sb, "  Align: H=%s, V=%s, Wrap=%t, Rotation=%d\n",
			orNone(a.Horizontal), orNone(a.Vertical), a.Wrap, a.Rotation)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRowDump writes one line per row: "Row <r>: <c>:<value> | ...".
// Cells without a value print as None.
func WriteRowDump(w io.Writer, dump *models.RowDump) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s: %s ---\n", dump.BookName, dump.SheetName)
	for _, row := range dump.Rows {
		parts := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			value := c.Value
			if !c.Present {
				value = "None"
			}
			parts[i] = fmt.Sprintf("%d:%s", c.C, value)
		}
		fmt.Fprintf(&sb, "Row %d: %s\n", row.R, strings.Join(parts, " | "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRawPreview writes a raw scan in the line format
// "Row <n>: <ref>: <value> | <ref>: <value>", followed by the merged
// ranges when there are any.
func WriteRawPreview(w io.Writer, preview *models.RawPreview) error {
	var sb strings.Builder
	sb.WriteString("Excel Content Preview:\n")
	for _, row := range preview.Rows {
		parts := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			parts[i] = c.Ref + ": " + c.Value
		}
		fmt.Fprintf(&sb, "Row %d: %s\n", row.R, strings.Join(parts, " | "))
	}

	if len(preview.MergedCells) > 0 {
		sb.WriteString("\nMerged Cells:\n")
		for _, ref := range preview.MergedCells {
			sb.WriteString(ref)
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMerged(sb *strings.Builder, merged []models.MergedRange) {
	for _, m := range merged {
		sb.WriteString(m.Ref)
		sb.WriteByte('\n')
	}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
