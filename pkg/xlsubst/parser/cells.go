// Package parser reads and writes spreadsheet rows with excelize.
package parser

import (
	"strconv"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads a sheet positionally. Every row is returned, the first
// one included, and blank cells become models.Empty.
func ExtractGrid(f *excelize.File, sheetName string) (models.RowGrid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.RowGrid, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = parseValue(raw, cellType)
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// parseValue classifies a raw cell value. Only cells stored as numbers
// become models.Number; strings that merely look numeric stay text.
func parseValue(raw string, cellType excelize.CellType) models.CellValue {
	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.Number(n)
		}
	}
	return models.Text(raw)
}
