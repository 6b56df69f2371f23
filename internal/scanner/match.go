package scanner

import "sort"

// match is an ephemeral record of one accepted term occurrence inside a
// single text node. Offsets and lengths are in runes.
type match struct {
	start  int
	length int
	entry  indexEntry
	text   string
}

// end returns the exclusive end offset.
func (m match) end() int {
	return m.start + m.length
}

// findMatches runs the matching algorithm over one text node's content and
// returns the non-overlapping matches in text order.
//
// Candidates are generated per term in index (descending length) order,
// with overlapping search starts so a shorter term hidden right after an
// accepted longer one is not missed prematurely. Overlaps are then
// resolved leftmost-first: among overlapping candidates the one appearing
// first in the text wins, regardless of term length. Length ranking only
// decides which candidates exist and which wins a tie at the same offset.
func (idx *TermIndex) findMatches(text string, plurals bool) []match {
	if len(idx.entries) == 0 || text == "" {
		return nil
	}

	original := []rune(text)
	folded := foldRunes(original)

	var candidates []match
	for _, entry := range idx.entries {
		for p := 0; p+len(entry.key) <= len(folded); p++ {
			if !runesEqual(folded[p:p+len(entry.key)], entry.key) {
				continue
			}
			length, ok := boundaryTest(folded, p, len(entry.key), plurals)
			if !ok {
				continue
			}
			candidates = append(candidates, match{
				start:  p,
				length: length,
				entry:  entry,
				text:   string(original[p : p+length]),
			})
		}
	}
	return resolveOverlaps(candidates)
}

// boundaryTest applies the whole-word check to a candidate span and
// returns the resolved match length. The character before the span and
// the character after it must each be absent or a non-word rune. When the
// trailing check fails only on a simple plural suffix, the match extends
// over it: exact first, then 's', then 'es'; at most one extension.
func boundaryTest(folded []rune, start, length int, plurals bool) (int, bool) {
	if start > 0 && isWordRune(folded[start-1]) {
		return 0, false
	}

	end := start + length
	if end == len(folded) || !isWordRune(folded[end]) {
		return length, true
	}
	if !plurals {
		return 0, false
	}

	if folded[end] == 's' && wordBoundaryAt(folded, end+1) {
		return length + 1, true
	}
	if folded[end] == 'e' && end+1 < len(folded) && folded[end+1] == 's' && wordBoundaryAt(folded, end+2) {
		return length + 2, true
	}
	return 0, false
}

// wordBoundaryAt reports whether position i is past the end of the text
// or holds a non-word rune.
func wordBoundaryAt(folded []rune, i int) bool {
	return i >= len(folded) || !isWordRune(folded[i])
}

// resolveOverlaps sorts candidates by ascending start offset and keeps a
// candidate only when it begins at or after the end of the last kept one.
// The sort is stable, so at equal offsets the longer term (generated
// first) prevails.
func resolveOverlaps(candidates []match) []match {
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	kept := candidates[:0]
	lastEnd := 0
	for _, m := range candidates {
		if len(kept) > 0 && m.start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.end()
	}
	return kept
}

// runesEqual compares two rune slices of equal length.
func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
