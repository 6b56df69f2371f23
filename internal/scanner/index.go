// Package scanner locates glossary term mentions in a document tree and
// rewrites them into annotation nodes.
//
// The scanner is a pure in-memory transform: it never raises, never does
// I/O, and treats every malformed input as a no-op. It implements the
// driven.TreeTransformer port.
package scanner

import (
	"sort"
	"unicode"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
)

// indexEntry is one term prepared for matching: the record plus its
// case-folded rune form.
type indexEntry struct {
	key    []rune
	record domain.TermRecord
}

// TermIndex is a read-only lookup structure over term records, ranked by
// descending case-folded term length (ties broken by input order) so that
// multi-word terms out-rank their substrings. Safe to share across
// concurrent scans once built.
type TermIndex struct {
	entries []indexEntry
}

// NewTermIndex builds an index over the given records.
func NewTermIndex(terms []domain.TermRecord) *TermIndex {
	idx := &TermIndex{entries: make([]indexEntry, 0, len(terms))}
	for _, record := range terms {
		key := foldRunes([]rune(record.Term))
		if len(key) == 0 {
			continue
		}
		idx.entries = append(idx.entries, indexEntry{key: key, record: record})
	}
	sort.SliceStable(idx.entries, func(i, j int) bool {
		return len(idx.entries[i].key) > len(idx.entries[j].key)
	})
	return idx
}

// Len returns the number of indexed terms.
func (idx *TermIndex) Len() int {
	return len(idx.entries)
}

// foldRunes lowercases rune by rune. Per-rune folding keeps offsets
// aligned between the folded and original text, which byte-level
// strings.ToLower does not guarantee.
func foldRunes(runes []rune) []rune {
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

// isWordRune reports whether r is a word character for the boundary test:
// letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
