package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsubst-go/pkg/xlsubst"
)

func TestResolveOptionsDefaults(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	opts, err := resolveOptions(cmd)
	require.NoError(t, err)

	assert.Equal(t, xlsubst.DefaultOriginalSheet, opts.OriginalSheet)
	assert.Equal(t, xlsubst.DefaultSourceColumn, opts.SourceColumn)
	assert.Equal(t, xlsubst.DefaultTargetColumn, opts.TargetColumn)
	assert.Equal(t, xlsubst.DefaultTargetSheet, opts.TargetSheet)
	assert.Empty(t, opts.Ignore)
}

func TestResolveOptionsFlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("target_sheet: FROMFILE\nsource_column: id\nignore: [x]\n"), 0644))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", cfgPath,
		"--target-sheet", "VN",
		"-i", "猫, 狗", "-i", "大",
		"--allow-empty",
		"-w", "3",
	}))

	opts, err := resolveOptions(cmd)
	require.NoError(t, err)

	assert.Equal(t, "VN", opts.TargetSheet)
	assert.Equal(t, "id", opts.SourceColumn)
	assert.Equal(t, []string{"猫, 狗", "大"}, opts.Ignore)
	assert.True(t, opts.AllowEmptyTranslations)
	assert.Equal(t, 3, opts.Workers)
}

func TestRootCmdRequiresTwoFiles(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"only-one.xlsx"})

	assert.Error(t, cmd.Execute())
}
