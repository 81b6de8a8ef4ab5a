// Package models defines data structures shared by the sheet reader, the
// substitution core and the sheet writer.
package models

import "strconv"

// CellKind tags the variant held by a CellValue.
type CellKind int

const (
	// KindEmpty is a blank or absent cell.
	KindEmpty CellKind = iota
	// KindText is a textual cell. Only text cells take part in substitution.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
)

// CellValue is a single spreadsheet cell: Text, Number or Empty.
type CellValue struct {
	Kind CellKind
	// Text holds the cell text when Kind is KindText.
	Text string
	// Number holds the numeric value when Kind is KindNumber.
	Number float64
}

// Text returns a text cell.
func Text(s string) CellValue {
	return CellValue{Kind: KindText, Text: s}
}

// Number returns a numeric cell.
func Number(n float64) CellValue {
	return CellValue{Kind: KindNumber, Number: n}
}

// Empty returns a blank cell.
func Empty() CellValue {
	return CellValue{}
}

// IsText reports whether the cell holds text.
func (c CellValue) IsText() bool {
	return c.Kind == KindText
}

// IsEmpty reports whether the cell is blank.
func (c CellValue) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String renders the cell the way it would appear in the sheet.
func (c CellValue) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Any returns the cell as a value suitable for excelize.SetCellValue,
// or nil for an empty cell.
func (c CellValue) Any() interface{} {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		if c.Number == float64(int64(c.Number)) {
			return int64(c.Number)
		}
		return c.Number
	default:
		return nil
	}
}
