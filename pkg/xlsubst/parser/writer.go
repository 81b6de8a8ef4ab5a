package parser

import (
	"io"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
	"github.com/xuri/excelize/v2"
)

// NewWorkbook returns a single-sheet workbook holding grid in sheetName,
// written from A1. Empty cells are not written. The caller closes the file.
func NewWorkbook(grid models.RowGrid, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheetName {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			f.Close()
			return nil, err
		}
	}

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cellName, cell.Any()); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// WriteGrid saves grid as a single-sheet workbook at path.
func WriteGrid(grid models.RowGrid, sheetName, path string) error {
	f, err := NewWorkbook(grid, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// WriteGridTo streams grid as a single-sheet workbook to w.
func WriteGridTo(w io.Writer, grid models.RowGrid, sheetName string) error {
	f, err := NewWorkbook(grid, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}
