package xlsubst

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/parser"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/transform"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/worker"
	"github.com/xuri/excelize/v2"
)

// Outcome is the result of one target workbook in ReplaceAll.
type Outcome struct {
	TargetPath string
	Result     *models.Result
	Err        error
}

// LoadIndex builds the translation index from the original sheet of f.
func LoadIndex(f *excelize.File, workbook string, opts Options) (*transform.Index, error) {
	if err := requireSheet(f, workbook, opts.OriginalSheet); err != nil {
		return nil, err
	}

	records, err := parser.ExtractRecords(f, opts.OriginalSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s!%s: %w", workbook, opts.OriginalSheet, err)
	}

	idx := transform.BuildIndex(records, opts.SourceColumn, opts.TargetColumn,
		transform.WithEmptyTranslations(opts.AllowEmptyTranslations))

	log.Debug().
		Str("workbook", workbook).
		Str("sheet", opts.OriginalSheet).
		Int("entries", idx.Len()).
		Msg("Built translation index")

	return idx, nil
}

// TransformWorkbook reads the target sheet of f and returns it translated.
func TransformWorkbook(f *excelize.File, workbook string, idx *transform.Index, opts Options) (models.RowGrid, models.Stats, error) {
	if err := requireSheet(f, workbook, opts.TargetSheet); err != nil {
		return nil, models.Stats{}, err
	}

	grid, err := parser.ExtractGrid(f, opts.TargetSheet)
	if err != nil {
		return nil, models.Stats{}, fmt.Errorf("read %s!%s: %w", workbook, opts.TargetSheet, err)
	}

	out, stats := transform.Transform(grid, idx, opts.IgnoreValues())
	return out, stats, nil
}

// Replace translates the target sheet of targetPath using the localization
// table in originalPath and writes a new workbook.
func Replace(ctx context.Context, originalPath, targetPath string, opts Options) (*models.Result, error) {
	outcomes, err := ReplaceAll(ctx, originalPath, []string{targetPath}, opts)
	if err != nil {
		return nil, err
	}
	return outcomes[0].Result, outcomes[0].Err
}

// ReplaceAll translates several target workbooks against one index. The
// returned error covers the original workbook and the options; failures of
// individual targets are reported in their Outcome.
func ReplaceAll(ctx context.Context, originalPath string, targetPaths []string, opts Options) ([]Outcome, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(targetPaths) == 0 {
		return nil, fmt.Errorf("no target workbook given")
	}
	if opts.OutputPath != "" && len(targetPaths) > 1 {
		return nil, fmt.Errorf("an output path can only be used with a single target workbook")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	original, err := OpenWorkbook(originalPath)
	if err != nil {
		return nil, err
	}
	idx, err := LoadIndex(original, filepath.Base(originalPath), opts)
	original.Close()
	if err != nil {
		return nil, err
	}

	type job struct {
		target string
		output string
	}
	outputs := opts.outputFiles(len(targetPaths))
	jobs := make([]job, len(targetPaths))
	for i, target := range targetPaths {
		jobs[i] = job{target: target, output: outputs[i]}
	}

	pool := worker.NewPool[job, *models.Result](opts.Workers, func(ctx context.Context, j job) (*models.Result, error) {
		return replaceOne(idx, j.target, j.output, opts)
	})

	tasks := pool.Execute(ctx, jobs)
	outcomes := make([]Outcome, len(tasks))
	for i, task := range tasks {
		outcomes[i] = Outcome{TargetPath: task.Input.target, Result: task.Result, Err: task.Err}
	}
	return outcomes, nil
}

func replaceOne(idx *transform.Index, targetPath, outputPath string, opts Options) (*models.Result, error) {
	f, err := OpenWorkbook(targetPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, stats, err := TransformWorkbook(f, filepath.Base(targetPath), idx, opts)
	if err != nil {
		return nil, err
	}

	if err := parser.WriteGrid(out, opts.TargetSheet, outputPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}

	result := &models.Result{
		SourcePath: targetPath,
		OutputPath: outputPath,
		SheetName:  opts.TargetSheet,
		UsedRange:  parser.UsedRange(out),
		Stats:      stats,
	}

	log.Info().
		Str("input", targetPath).
		Str("output", outputPath).
		Str("range", result.UsedRange).
		Int("exact", stats.Exact).
		Int("compound", stats.Compound).
		Int("pending", stats.Pending).
		Int("substitutions", stats.Substitutions).
		Msg("Workbook translated")

	return result, nil
}

// ReplaceStream is Replace over in-memory workbooks: it reads both uploads
// and writes the translated workbook to w.
func ReplaceStream(original, target io.Reader, w io.Writer, opts Options) (models.Stats, error) {
	if err := opts.Validate(); err != nil {
		return models.Stats{}, err
	}

	of, err := OpenWorkbookReader("original", original)
	if err != nil {
		return models.Stats{}, err
	}
	idx, err := LoadIndex(of, "original", opts)
	of.Close()
	if err != nil {
		return models.Stats{}, err
	}

	tf, err := OpenWorkbookReader("target", target)
	if err != nil {
		return models.Stats{}, err
	}
	defer tf.Close()

	out, stats, err := TransformWorkbook(tf, "target", idx, opts)
	if err != nil {
		return models.Stats{}, err
	}
	if err := parser.WriteGridTo(w, out, opts.TargetSheet); err != nil {
		return models.Stats{}, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}
