package xlsubst

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMissingSheet matches any *MissingSheetError.
var ErrMissingSheet = errors.New("sheet not found")

// ErrParse matches any *ParseError.
var ErrParse = errors.New("invalid xlsx format")

// MissingSheetError reports a sheet name absent from a workbook.
type MissingSheetError struct {
	Workbook  string
	SheetName string
	// Available lists the sheets the workbook does have.
	Available []string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q not found in %s (available: %q)", e.SheetName, e.Workbook, e.Available)
}

// Is makes errors.Is(err, ErrMissingSheet) hold.
func (e *MissingSheetError) Is(target error) bool {
	return target == ErrMissingSheet
}

// ParseError reports a workbook that could not be decoded.
type ParseError struct {
	Workbook string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Workbook, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError.
func NewParseError(workbook string, err error) *ParseError {
	return &ParseError{
		Workbook: workbook,
		Err:      err,
	}
}
