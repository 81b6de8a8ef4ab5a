package parser

import (
	"strconv"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
	"github.com/xuri/excelize/v2"
)

// emptyHeader names columns whose header cell is blank.
const emptyHeader = "__EMPTY"

// ExtractRecords reads a sheet as header-keyed records. The first non-blank
// row is the header; blank rows below it are skipped and blank cells are
// left out of their record.
func ExtractRecords(f *excelize.File, sheetName string) ([]models.Record, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	width := 0
	for rowIdx, row := range rows {
		if headerIdx < 0 && !isBlank(row) {
			headerIdx = rowIdx
		}
		if len(row) > width {
			width = len(row)
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	headers := headerNames(rows[headerIdx], width)

	var records []models.Record
	for _, row := range rows[headerIdx+1:] {
		if isBlank(row) {
			continue
		}
		rec := make(models.Record, len(row))
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			rec[headers[colIdx]] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}

// headerNames names width columns from the header row. Blank headers become
// __EMPTY, __EMPTY_1, ...; a repeated name gets a _1, _2, ... suffix.
func headerNames(row []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for i := range names {
		name := ""
		if i < len(row) {
			name = row[i]
		}
		if name == "" {
			name = emptyHeader
		}

		base := name
		for {
			n, dup := seen[base]
			if !dup {
				seen[base] = 0
				break
			}
			n++
			seen[base] = n
			name = base + "_" + strconv.Itoa(n)
			if _, taken := seen[name]; !taken {
				seen[name] = 0
				break
			}
		}
		names[i] = name
	}

	return names
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
