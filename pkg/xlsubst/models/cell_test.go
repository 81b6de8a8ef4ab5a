package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellValueString(t *testing.T) {
	assert.Equal(t, "猫", Text("猫").String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "", Empty().String())
}

func TestCellValueAny(t *testing.T) {
	assert.Equal(t, "x", Text("x").Any())
	assert.Equal(t, int64(42), Number(42).Any())
	assert.Equal(t, 1.25, Number(1.25).Any())
	assert.Nil(t, Empty().Any())
}

func TestRowGridClone(t *testing.T) {
	grid := RowGrid{{Text("a")}, {}, nil}

	clone := grid.Clone()
	clone[0][0] = Text("b")

	assert.Equal(t, Text("a"), grid[0][0])
	assert.Equal(t, Row{}, clone[1])
	assert.Nil(t, clone[2])
}
