package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.yaml", `
original_sheet: table
source_column: id
target_column: zh
target_sheet: ID
ignore:
  - 猫
  - "猫, 狗"
output_dir: out
allow_empty_translations: true
workers: 4
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.OriginalSheet)
	assert.Equal(t, "id", cfg.SourceColumn)
	assert.Equal(t, "zh", cfg.TargetColumn)
	assert.Equal(t, "ID", cfg.TargetSheet)
	assert.Equal(t, []string{"猫", "猫, 狗"}, cfg.Ignore)
	assert.Equal(t, "out", cfg.OutputDir)
	require.NotNil(t, cfg.AllowEmptyTranslations)
	assert.True(t, *cfg.AllowEmptyTranslations)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(writeFile(t, dir, "bad.yaml", "ignore: [unterminated"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, dir, "neg.yaml", "workers: -1"))
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.yaml", "target_sheet: ID\nworkers: 2\n")

	t.Setenv(EnvTargetSheet, "VN")
	t.Setenv(EnvIgnore, "猫 | 猫, 狗 |")
	t.Setenv(EnvAllowEmpty, "false")
	t.Setenv(EnvWorkers, "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "VN", cfg.TargetSheet)
	assert.Equal(t, []string{"猫", "猫, 狗"}, cfg.Ignore)
	require.NotNil(t, cfg.AllowEmptyTranslations)
	assert.False(t, *cfg.AllowEmptyTranslations)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadInvalidEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.yaml", "")

	t.Setenv(EnvWorkers, "many")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	allow := true
	cfg := &Config{
		SourceColumn:           "id",
		Ignore:                 []string{"x"},
		AllowEmptyTranslations: &allow,
		Workers:                5,
	}

	opts := xlsubst.DefaultOptions()
	cfg.Apply(&opts)

	assert.Equal(t, xlsubst.DefaultOriginalSheet, opts.OriginalSheet)
	assert.Equal(t, "id", opts.SourceColumn)
	assert.Equal(t, xlsubst.DefaultTargetColumn, opts.TargetColumn)
	assert.Equal(t, []string{"x"}, opts.Ignore)
	assert.True(t, opts.AllowEmptyTranslations)
	assert.Equal(t, 5, opts.Workers)
	assert.Equal(t, ".", opts.OutputDir)
}
