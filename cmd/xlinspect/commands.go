package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
)

func newInspectCmd(g *globalOptions) *cobra.Command {
	opts := xlinspect.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print sheet names, used range, merged cells and a value preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = g.logger(cmd)
			info, err := xlinspect.Inspect(args[0], opts)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			return g.emit(cmd, info, func(w io.Writer) error {
				return output.WriteSummary(w, info)
			})
		},
	}

	fs := cmd.Flags()
	addSheetFlag(fs, &opts.SheetName)
	fs.BoolVar(&opts.AllSheets, "all-sheets", false, "Inspect every sheet")
	fs.IntVar(&opts.PreviewRows, "rows", opts.PreviewRows, "Number of preview rows")
	fs.IntVar(&opts.PreviewCols, "cols", opts.PreviewCols, "Number of preview columns")
	return cmd
}

func newTemplateCmd(g *globalOptions) *cobra.Command {
	opts := xlinspect.DefaultTemplateOptions()

	cmd := &cobra.Command{
		Use:   "template [input.xlsx]",
		Short: "Print merged cells, dimensions and cell styling of a form sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = g.logger(cmd)
			info, err := xlinspect.InspectTemplate(args[0], opts)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			return g.emit(cmd, info, func(w io.Writer) error {
				return output.WriteTemplate(w, info)
			})
		},
	}

	fs := cmd.Flags()
	addSheetFlag(fs, &opts.SheetName)
	fs.IntVar(&opts.HeightRows, "height-rows", opts.HeightRows, "Number of leading rows whose height is printed")
	fs.IntVar(&opts.DetailRows, "detail-rows", opts.DetailRows, "Rows of cell styling to print")
	fs.IntVar(&opts.DetailCols, "detail-cols", opts.DetailCols, "Columns of cell styling to print")
	return cmd
}

func newRowsCmd(g *globalOptions) *cobra.Command {
	opts := xlinspect.DefaultRowOptions()

	cmd := &cobra.Command{
		Use:   "rows [input.xlsx]",
		Short: "Print a block of cell values, one row per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = g.logger(cmd)
			dump, err := xlinspect.InspectRows(args[0], opts)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			return g.emit(cmd, dump, func(w io.Writer) error {
				return output.WriteRowDump(w, dump)
			})
		},
	}

	fs := cmd.Flags()
	addSheetFlag(fs, &opts.SheetName)
	fs.IntVar(&opts.FromRow, "from-row", opts.FromRow, "First row (1-based)")
	fs.IntVar(&opts.ToRow, "to-row", opts.ToRow, "Last row (inclusive)")
	fs.IntVar(&opts.FromCol, "from-col", opts.FromCol, "First column (1-based)")
	fs.IntVar(&opts.ToCol, "to-col", opts.ToCol, "Last column (inclusive)")
	return cmd
}

func newRawCmd(g *globalOptions) *cobra.Command {
	opts := xlinspect.DefaultRawOptions()
	var src xlinspect.RawSource

	cmd := &cobra.Command{
		Use:   "raw [input.xlsx | unpacked-dir]",
		Short: "Print worksheet rows by reading the XML parts directly",
		Long: `raw reads a worksheet part and the shared strings part without a spreadsheet
library. Pass an .xlsx file or the root of an unpacked one, or point at the
parts with --worksheet and --shared-strings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.PackagePath = args[0]
			}
			if src.PackagePath == "" && src.WorksheetPath == "" {
				return errors.New("nothing to scan: pass a package path or --worksheet")
			}

			opts.Logger = g.logger(cmd)
			preview, err := xlinspect.ScanRaw(src, opts)
			if err != nil {
				return fmt.Errorf("error parsing XML: %w", err)
			}
			if err := g.emit(cmd, preview, func(w io.Writer) error {
				return output.WriteRawPreview(w, preview)
			}); err != nil {
				return err
			}

			if g.outputPath != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Done")
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&src.SheetName, "sheet", "", "Sheet name inside the package (default: first sheet)")
	fs.StringVar(&src.WorksheetPath, "worksheet", "", "Worksheet XML part, e.g. xl/worksheets/sheet1.xml")
	fs.StringVar(&src.SharedStringsPath, "shared-strings", "", "Shared strings XML part, e.g. xl/sharedStrings.xml")
	fs.IntVar(&opts.RowLimit, "row-limit", opts.RowLimit, "Stop after this row number (0 for no limit)")
	return cmd
}
