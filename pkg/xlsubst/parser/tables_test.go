package parser

import (
	"testing"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
)

func TestUsedRange(t *testing.T) {
	tests := []struct {
		name     string
		grid     models.RowGrid
		expected string
	}{
		{"empty", nil, ""},
		{"all blank", models.RowGrid{{models.Empty()}}, ""},
		{"single", models.TextGrid([]string{"a"}), "A1:A1"},
		{
			"offset",
			models.RowGrid{
				{},
				{models.Empty(), models.Text("a")},
				{models.Empty(), models.Empty(), models.Number(1)},
			},
			"B2:C3",
		},
	}

	for _, tt := range tests {
		if result := UsedRange(tt.grid); result != tt.expected {
			t.Errorf("%s: UsedRange = %q, expected %q", tt.name, result, tt.expected)
		}
	}
}
