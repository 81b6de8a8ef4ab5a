package models

// Stats summarizes one substitution run.
type Stats struct {
	// Exact is the number of cells replaced by a whole-cell match.
	Exact int `json:"exact"`
	// Compound is the number of comma-joined cells that were segmented.
	Compound int `json:"compound"`
	// Pending is the number of compound cells left with an unresolved segment
	// after the first pass.
	Pending int `json:"pending"`
	// Substitutions is the number of substring replacements made by the second pass.
	Substitutions int `json:"substitutions"`
}

// Result describes a written output workbook.
type Result struct {
	// SourcePath is the workbook the rows were read from.
	SourcePath string `json:"source_path"`
	// OutputPath is the written workbook.
	OutputPath string `json:"output_path"`
	// SheetName is the sheet name in both workbooks.
	SheetName string `json:"sheet_name"`
	// UsedRange is the range covering the non-empty output cells, e.g. "A1:D10".
	UsedRange string `json:"used_range,omitempty"`
	// Stats are the counters of the substitution run.
	Stats Stats `json:"stats"`
}
