package xlsubst

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens the workbook at path. A file that exists but cannot be
// decoded yields a *ParseError.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewParseError(filepath.Base(path), err)
	}
	return f, nil
}

// OpenWorkbookReader decodes workbook bytes, e.g. an upload. name is only
// used in error messages.
func OpenWorkbookReader(name string, r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewParseError(name, err)
	}
	return f, nil
}

// requireSheet fails with a *MissingSheetError when sheetName is not in f.
func requireSheet(f *excelize.File, workbook, sheetName string) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return &MissingSheetError{
			Workbook:  workbook,
			SheetName: sheetName,
			Available: f.GetSheetList(),
		}
	}
	return nil
}
