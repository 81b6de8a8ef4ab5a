// Package transform substitutes source-language cell text with translations.
//
// Cells are matched in two passes. The first pass replaces whole cells and the
// comma-separated parts of compound cells. The second pass revisits compound
// cells that still hold untranslated parts and replaces substrings, longest
// source key first, skipping translations the caller asked to ignore.
//
// Everything in this package is synchronous and works on in-memory data only.
package transform

import "strings"

// Segment splits a compound cell value into its parts.
//
// A comma separates parts only when it is followed by a single space and is
// not inside parentheses. The parenthesis flag is not a depth counter: "("
// sets it and ")" clears it. The space after a separating comma is consumed.
// Every part is trimmed and none is dropped, so Segment("") returns [""].
func Segment(text string) []string {
	var (
		parts   []string
		current strings.Builder
		inParen bool
	)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '(':
			inParen = true
		case ')':
			inParen = false
		}

		if r == ',' && !inParen && i+1 < len(runes) && runes[i+1] == ' ' {
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
			i++
			continue
		}
		current.WriteRune(r)
	}

	return append(parts, strings.TrimSpace(current.String()))
}

// isCompound reports whether text should be segmented.
func isCompound(text string) bool {
	return strings.Contains(text, ",")
}
