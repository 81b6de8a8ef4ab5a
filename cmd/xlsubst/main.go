// Package main provides the CLI entry point for xlsubst.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/config"
)

var (
	configPath    string
	originalSheet string
	sourceColumn  string
	targetColumn  string
	targetSheet   string
	ignore        []string
	outputPath    string
	outputDir     string
	allowEmpty    bool
	workers       int
	verbose       bool
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("xlsubst failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsubst <original.xlsx> <target.xlsx>...",
		Short: "Replace source-language strings in spreadsheets with their translations",
		Long: `xlsubst reads a localization table (source column → target column) from the
original workbook and writes a translated copy of the target sheet of each
target workbook. Comma-separated cells are translated part by part; parts that
still do not match are resolved by substring, longest source string first.
Translations listed with --ignore are never applied to those substrings.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Job file (default: "+config.DefaultFileName+" if present)")
	flags.StringVar(&originalSheet, "original-sheet", xlsubst.DefaultOriginalSheet, "Sheet holding the localization table")
	flags.StringVar(&sourceColumn, "source-column", xlsubst.DefaultSourceColumn, "Header of the source-language column")
	flags.StringVar(&targetColumn, "target-column", xlsubst.DefaultTargetColumn, "Header of the translation column")
	flags.StringVar(&targetSheet, "target-sheet", xlsubst.DefaultTargetSheet, "Sheet to translate in each target workbook")
	flags.StringArrayVarP(&ignore, "ignore", "i", nil, "Translation never applied to compound-cell substrings (repeatable)")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (single target only)")
	flags.StringVar(&outputDir, "output-dir", ".", "Directory for generated new-<sheet>-<timestamp>.xlsx files")
	flags.BoolVar(&allowEmpty, "allow-empty", false, "Let rows with an empty translation match")
	flags.IntVarP(&workers, "workers", "w", 1, "Target workbooks processed in parallel")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, err := xlsubst.ReplaceAll(ctx, args[0], args[1:], opts)
	if err != nil {
		return describe(err)
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			log.Error().Err(describe(o.Err)).Str("file", o.TargetPath).Msg("Workbook not translated")
			continue
		}
		fmt.Println(o.Result.OutputPath)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d workbooks failed", failed, len(outcomes))
	}
	return nil
}

// resolveOptions layers defaults, the job file, the environment and the
// flags the user actually set, in that order.
func resolveOptions(cmd *cobra.Command) (xlsubst.Options, error) {
	opts := xlsubst.DefaultOptions()

	cfg, err := config.Load(configPath)
	if err != nil {
		return opts, fmt.Errorf("load config: %w", err)
	}
	cfg.Apply(&opts)

	flags := cmd.Flags()
	if flags.Changed("original-sheet") {
		opts.OriginalSheet = originalSheet
	}
	if flags.Changed("source-column") {
		opts.SourceColumn = sourceColumn
	}
	if flags.Changed("target-column") {
		opts.TargetColumn = targetColumn
	}
	if flags.Changed("target-sheet") {
		opts.TargetSheet = targetSheet
	}
	if flags.Changed("ignore") {
		opts.Ignore = ignore
	}
	if flags.Changed("output") {
		opts.OutputPath = outputPath
	}
	if flags.Changed("output-dir") {
		opts.OutputDir = outputDir
	}
	if flags.Changed("allow-empty") {
		opts.AllowEmptyTranslations = allowEmpty
	}
	if flags.Changed("workers") {
		opts.Workers = workers
	}

	return opts, opts.Validate()
}

// describe adds a hint to the errors a user can fix from the command line.
func describe(err error) error {
	var missing *xlsubst.MissingSheetError
	switch {
	case errors.As(err, &missing):
		return fmt.Errorf("%w (set the sheet name with --original-sheet or --target-sheet)", err)
	case errors.Is(err, xlsubst.ErrParse):
		return fmt.Errorf("%w (is it an .xlsx workbook?)", err)
	default:
		return err
	}
}
