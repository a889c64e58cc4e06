// Package main provides the CLI entry point for xlinspect.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect/output"
)

// globalOptions holds the flags shared by every subcommand.
type globalOptions struct {
	outputPath string
	format     string
	pretty     bool
	encoding   string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "xlinspect",
		Short: "Print the structure of spreadsheet files",
		Long: `xlinspect prints the structure of Excel files: sheet names, merged cells,
row and column dimensions, cell values and cell styling. The raw command reads
worksheet XML directly and resolves shared strings without a spreadsheet library.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}

	opts.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newInspectCmd(opts),
		newTemplateCmd(opts),
		newRowsCmd(opts),
		newRawCmd(opts),
	)
	return rootCmd
}

func (o *globalOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&o.format, "format", "text", "Output format: text, json")
	fs.BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&o.encoding, "encoding", "utf-8", "Output character set (IANA name)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug details to stderr")
}

func (o *globalOptions) validate() error {
	switch o.format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", o.format)
	}
	if _, err := output.NewEncodedWriter(io.Discard, o.encoding); err != nil {
		return err
	}
	return nil
}

func (o *globalOptions) logger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// emit writes a result to --output or stdout, as JSON or through render.
func (o *globalOptions) emit(cmd *cobra.Command, v any, render func(io.Writer) error) (err error) {
	var dst io.Writer = cmd.OutOrStdout()
	if o.outputPath != "" {
		f, ferr := os.Create(o.outputPath)
		if ferr != nil {
			return fmt.Errorf("failed to write output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("failed to write output: %w", cerr)
			}
		}()
		dst = f
	}

	w, err := output.NewEncodedWriter(dst, o.encoding)
	if err != nil {
		return err
	}

	if o.format == "json" {
		data, jerr := output.ToJSON(v, o.pretty)
		if jerr != nil {
			w.Close()
			return fmt.Errorf("serialization failed: %w", jerr)
		}
		_, err = w.Write(append(data, '\n'))
	} else {
		err = render(w)
	}
	if err != nil {
		w.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return w.Close()
}

func addSheetFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "sheet", "", "Sheet name (default: active sheet)")
}
