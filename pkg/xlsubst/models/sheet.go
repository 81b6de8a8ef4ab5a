package models

// Row is an ordered sequence of cells.
type Row []CellValue

// RowGrid is a positional sheet: row 0 is the first sheet row.
type RowGrid []Row

// Clone returns a deep copy of the grid.
func (g RowGrid) Clone() RowGrid {
	if g == nil {
		return nil
	}
	out := make(RowGrid, len(g))
	for i, row := range g {
		if row == nil {
			continue
		}
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

// TextGrid builds a grid of text cells, mostly useful in tests.
func TextGrid(rows ...[]string) RowGrid {
	grid := make(RowGrid, len(rows))
	for i, row := range rows {
		grid[i] = make(Row, len(row))
		for j, s := range row {
			grid[i][j] = Text(s)
		}
	}
	return grid
}

// Record maps a header name to the cell text below it. Cells that are
// blank in the sheet are absent from the record.
type Record map[string]string
