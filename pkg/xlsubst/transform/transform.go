package transform

import (
	"strings"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
)

// pendingCell is a compound cell with at least one part left untranslated
// by the first pass.
type pendingCell struct {
	text string
	row  int
	col  int
}

// Transform returns a copy of grid with matched text substituted.
//
// ignore lists translation values the second pass must never apply. Cells
// that match nothing are returned unchanged; partial translation is not an
// error. grid itself is left untouched.
func Transform(grid models.RowGrid, idx *Index, ignore []string) (models.RowGrid, models.Stats) {
	out := grid.Clone()
	var stats models.Stats

	pending := firstPass(out, idx, &stats)
	stats.Pending = len(pending)
	stats.Substitutions = secondPass(out, pending, idx, ignoreSet(ignore))

	return out, stats
}

// firstPass replaces whole-cell and per-segment matches in place and
// returns the compound cells that still need work, in grid order.
func firstPass(grid models.RowGrid, idx *Index, stats *models.Stats) []pendingCell {
	var pending []pendingCell

	for r, row := range grid {
		for c, cell := range row {
			if !cell.IsText() {
				continue
			}

			if v, ok := idx.Lookup(cell.Text); ok {
				row[c] = models.Text(v)
				stats.Exact++
				continue
			}

			if !isCompound(cell.Text) {
				continue
			}

			joined, matched, total := substituteSegments(cell.Text, idx)
			row[c] = models.Text(joined)
			stats.Compound++
			if matched < total {
				pending = append(pending, pendingCell{text: joined, row: r, col: c})
			}
		}
	}

	return pending
}

// substituteSegments translates each segment of text found in the sorted
// list and joins the result with ", ".
func substituteSegments(text string, idx *Index) (joined string, matched, total int) {
	segments := Segment(text)
	for i, seg := range segments {
		if v, ok := idx.Find(seg); ok {
			segments[i] = v
			matched++
		}
	}
	return strings.Join(segments, ", "), matched, len(segments)
}

// secondPass applies every usable, non-ignored entry to each pending cell,
// longest key first. Each entry replaces only the first occurrence of its
// key, and later entries see the text left by earlier ones.
func secondPass(grid models.RowGrid, pending []pendingCell, idx *Index, ignore map[string]struct{}) int {
	var substitutions int

	for _, p := range pending {
		text := p.text
		for _, e := range idx.sorted {
			if _, skip := ignore[e.Value]; skip {
				continue
			}
			if !e.usable(idx.allowEmpty) || !strings.Contains(text, e.Key) {
				continue
			}

			replaced := strings.Replace(text, e.Key, e.Value, 1)
			if replaced == text {
				continue
			}
			text = replaced
			grid[p.row][p.col] = models.Text(text)
			substitutions++
		}
	}

	return substitutions
}

func ignoreSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
