// Package xlsubst replaces source-language strings in a spreadsheet with
// translations taken from a localization table.
package xlsubst

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Defaults used when no configuration names the sheets and columns.
const (
	DefaultOriginalSheet = "d5"
	DefaultSourceColumn  = "印尼"
	DefaultTargetColumn  = "中文"
	DefaultTargetSheet   = "ID"
)

// Options configures a replacement run.
type Options struct {
	// OriginalSheet is the localization table sheet in the original workbook.
	OriginalSheet string
	// SourceColumn is the header of the source-language column.
	SourceColumn string
	// TargetColumn is the header of the translation column.
	TargetColumn string
	// TargetSheet is the sheet to translate in each target workbook. The
	// output workbook uses the same sheet name.
	TargetSheet string
	// Ignore lists translations the compound-cell pass must never apply.
	Ignore []string
	// AllowEmptyTranslations lets rows with an empty translation match.
	AllowEmptyTranslations bool
	// OutputDir receives generated output files. Defaults to ".".
	OutputDir string
	// OutputPath, when set, is used instead of a generated name. Only valid
	// for a single target workbook.
	OutputPath string
	// Workers bounds how many target workbooks are processed at once.
	Workers int
	// Now stamps generated output names. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options of the original localization workflow.
func DefaultOptions() Options {
	return Options{
		OriginalSheet: DefaultOriginalSheet,
		SourceColumn:  DefaultSourceColumn,
		TargetColumn:  DefaultTargetColumn,
		TargetSheet:   DefaultTargetSheet,
		OutputDir:     ".",
		Workers:       1,
	}
}

// Validate checks that every required field is set.
func (o Options) Validate() error {
	required := []struct{ name, value string }{
		{"original sheet", o.OriginalSheet},
		{"source column", o.SourceColumn},
		{"target column", o.TargetColumn},
		{"target sheet", o.TargetSheet},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
}

// OutputFile returns where the output for the target sheet is written:
// OutputPath if set, otherwise new-<sheet>-<unix millis>.xlsx in OutputDir.
func (o Options) OutputFile() string {
	return o.outputFiles(1)[0]
}

// outputFiles names the outputs of n target workbooks from one timestamp.
// With more than one target a -1, -2, ... suffix keeps the names apart.
func (o Options) outputFiles(n int) []string {
	files := make([]string, n)
	if n == 1 && o.OutputPath != "" {
		files[0] = o.OutputPath
		return files
	}

	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	dir := o.OutputDir
	if dir == "" {
		dir = "."
	}
	stamp := now().UnixMilli()

	for i := range files {
		name := fmt.Sprintf("new-%s-%d.xlsx", o.TargetSheet, stamp)
		if n > 1 {
			name = fmt.Sprintf("new-%s-%d-%d.xlsx", o.TargetSheet, stamp, i+1)
		}
		files[i] = filepath.Join(dir, name)
	}
	return files
}

// IgnoreValues returns Ignore with blank and repeated entries removed,
// keeping the first occurrence of each.
func (o Options) IgnoreValues() []string {
	seen := make(map[string]struct{}, len(o.Ignore))
	var out []string
	for _, v := range o.Ignore {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
