package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/submittals/internal/config"
	"github.com/dgallion1/submittals/internal/export"
	"github.com/dgallion1/submittals/internal/parser"
	"github.com/dgallion1/submittals/internal/pipeline"
	"github.com/dgallion1/submittals/internal/version"
)

type options struct {
	format       string
	output       string
	encoding     string
	jurisdiction string
	boilerplate  []string
	summary      bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{
		encoding:     cfg.Encoding,
		jurisdiction: cfg.Jurisdiction,
		boilerplate:  cfg.Boilerplate,
	}

	cmd := &cobra.Command{
		Use:   "submittals <file>",
		Short: "Convert a specification submittals report into a submittal log",
		Long: `submittals reads a submittals report exported from a construction
specification (text, PDF, DOCX, HTML or Markdown), rebuilds its outline
and prints one tab-separated row per actionable submittal requirement.

Rows have seven fields: section, subsection, reserved, description,
action, status code and jurisdiction.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts, cfg)
		},
	}
	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("submittals %s\n", version.String()))

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", "tsv", "Output format (tsv, xlsx)")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to a file instead of stdout")
	flags.StringVar(&opts.encoding, "encoding", opts.encoding, "Encoding of plain text input")
	flags.StringVar(&opts.jurisdiction, "jurisdiction", opts.jurisdiction, "Jurisdiction tag written on every row")
	flags.StringArrayVar(&opts.boilerplate, "boilerplate", opts.boilerplate, "Running-header prefix to discard (repeatable)")
	flags.BoolVar(&opts.summary, "summary", false, "Print a conversion summary to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options, cfg config.Config) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if format == export.FormatXLSX && opts.output == "" {
		return errors.New("xlsx output requires --output")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	conv := pipeline.NewConverter(pipeline.Options{
		Boilerplate:  opts.boilerplate,
		Jurisdiction: opts.jurisdiction,
	}, log)
	res, err := conv.ConvertDocument(f, path, parser.Options{
		Encoding:          opts.encoding,
		FallbackPdftotext: cfg.PDFFallbackPdftotext,
		TextFallback:      true,
	})
	f.Close()
	if err != nil {
		return err
	}

	if opts.output == "" {
		if err := export.Write(cmd.OutOrStdout(), format, res.Rows); err != nil {
			return err
		}
	} else if err := writeFile(opts.output, format, res); err != nil {
		return err
	}

	if opts.summary {
		FormatSummary(cmd.ErrOrStderr(), path, res.Stats)
	}
	return nil
}

// writeFile exports rows to path and reports a failed close.
func writeFile(path string, format export.Format, res *pipeline.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(file, format, res.Rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
