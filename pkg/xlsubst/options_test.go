package xlsubst

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsOutputFile(t *testing.T) {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.UnixMilli(42) }

	assert.Equal(t, filepath.Join(".", "new-ID-42.xlsx"), opts.OutputFile())

	opts.OutputDir = "out"
	assert.Equal(t, filepath.Join("out", "new-ID-42.xlsx"), opts.OutputFile())
	assert.Equal(t, []string{
		filepath.Join("out", "new-ID-42-1.xlsx"),
		filepath.Join("out", "new-ID-42-2.xlsx"),
	}, opts.outputFiles(2))

	opts.OutputPath = "explicit.xlsx"
	assert.Equal(t, "explicit.xlsx", opts.OutputFile())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.SourceColumn = " "
	assert.EqualError(t, opts.Validate(), "source column is required")
}

func TestOptionsIgnoreValues(t *testing.T) {
	opts := Options{Ignore: []string{"b", "", "a", "b", "猫, 狗"}}

	assert.Equal(t, []string{"b", "a", "猫, 狗"}, opts.IgnoreValues())
}
