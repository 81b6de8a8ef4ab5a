package transform

import (
	"sort"
	"unicode/utf8"

	"github.com/ukaji3/xlsubst-go/pkg/xlsubst/models"
)

// Entry is one source→translation pair read from the original sheet.
type Entry struct {
	Key   string
	Value string
}

// usable reports whether the entry may be applied as a substitution.
func (e Entry) usable(allowEmpty bool) bool {
	if e.Key == "" {
		return false
	}
	return allowEmpty || e.Value != ""
}

// IndexOption configures BuildIndex.
type IndexOption func(*Index)

// WithEmptyTranslations controls whether an entry with an empty translation
// counts as a match. When disabled (the default) such entries are kept in
// the sorted list but never substituted.
func WithEmptyTranslations(allow bool) IndexOption {
	return func(idx *Index) { idx.allowEmpty = allow }
}

// Index is the translation table built from the original sheet. It is
// immutable once built and safe to share between goroutines.
type Index struct {
	exact      map[string]string
	sorted     []Entry
	allowEmpty bool
}

// BuildIndex reads sourceColumn and targetColumn from each record.
//
// The exact dictionary keeps the last value seen for a duplicated key. The
// sorted list keeps every record, ordered by descending key length in runes;
// equal lengths keep their sheet order. A record without the source column
// has an empty key and sorts last.
func BuildIndex(records []models.Record, sourceColumn, targetColumn string, opts ...IndexOption) *Index {
	idx := &Index{
		exact:  make(map[string]string, len(records)),
		sorted: make([]Entry, 0, len(records)),
	}
	for _, opt := range opts {
		opt(idx)
	}

	for _, rec := range records {
		e := Entry{Key: rec[sourceColumn], Value: rec[targetColumn]}
		idx.exact[e.Key] = e.Value
		idx.sorted = append(idx.sorted, e)
	}

	sort.SliceStable(idx.sorted, func(i, j int) bool {
		return utf8.RuneCountInString(idx.sorted[i].Key) > utf8.RuneCountInString(idx.sorted[j].Key)
	})

	return idx
}

// Lookup returns the exact translation of key.
func (idx *Index) Lookup(key string) (string, bool) {
	v, ok := idx.exact[key]
	if !ok || !(Entry{Key: key, Value: v}).usable(idx.allowEmpty) {
		return "", false
	}
	return v, true
}

// Find returns the translation of the first sorted entry whose key equals
// segment.
func (idx *Index) Find(segment string) (string, bool) {
	for _, e := range idx.sorted {
		if e.Key != segment {
			continue
		}
		if !e.usable(idx.allowEmpty) {
			return "", false
		}
		return e.Value, true
	}
	return "", false
}

// Entries returns a copy of the length-sorted entries.
func (idx *Index) Entries() []Entry {
	return append([]Entry(nil), idx.sorted...)
}

// Len returns the number of entries, duplicates included.
func (idx *Index) Len() int {
	return len(idx.sorted)
}
