package lexicon

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Entry is one labeled keyword list.
type Entry struct {
	Label    string
	Keywords []string
}

// Hit records that a keyword of an entry occurred in a text.
type Hit struct {
	Label    string
	Keyword  string
	Position int

	entry   int
	keyword int
}

// Table matches whole words (and their plural forms) from a set of labeled
// keyword lists in a single pass using an Aho-Corasick automaton.
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	entries  []Entry
	patterns []string
	owners   [][]ref
	matcher  *ahocorasick.Matcher
}

type ref struct {
	entry   int
	keyword int
}

// NewTable builds the automaton. Keywords are normalized; blank ones are
// skipped. Entry order is preserved and used as priority order.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: make([]Entry, len(entries))}
	index := make(map[string]int)

	for i, e := range entries {
		keywords := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			kw = Normalize(kw)
			if kw == "" {
				continue
			}
			r := ref{entry: i, keyword: len(keywords)}
			keywords = append(keywords, kw)

			for _, v := range wordForms(kw) {
				pos, ok := index[v]
				if !ok {
					pos = len(t.patterns)
					index[v] = pos
					t.patterns = append(t.patterns, v)
					t.owners = append(t.owners, nil)
				}
				t.owners[pos] = append(t.owners[pos], r)
			}
		}
		t.entries[i] = Entry{Label: e.Label, Keywords: keywords}
	}

	if len(t.patterns) > 0 {
		t.matcher = ahocorasick.NewStringMatcher(t.patterns)
	}
	return t
}

// Entries returns the normalized entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Entry returns the entry with the given label.
func (t *Table) Entry(label string) (Entry, bool) {
	for _, e := range t.entries {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// Hits returns every keyword occurring in normalized text, ordered by entry
// then keyword position within the entry.
func (t *Table) Hits(text string) []Hit {
	if t.matcher == nil || text == "" {
		return nil
	}

	padded := " " + text + " "
	first := make(map[ref]int)

	for _, idx := range t.matcher.MatchThreadSafe([]byte(padded)) {
		pattern := t.patterns[idx]
		at := strings.Index(padded, pattern)
		for _, r := range t.owners[idx] {
			if prev, ok := first[r]; !ok || at < prev {
				first[r] = at
			}
		}
	}

	hits := make([]Hit, 0, len(first))
	for r, at := range first {
		hits = append(hits, Hit{
			Label:    t.entries[r.entry].Label,
			Keyword:  t.entries[r.entry].Keywords[r.keyword],
			Position: at,
			entry:    r.entry,
			keyword:  r.keyword,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].entry != hits[j].entry {
			return hits[i].entry < hits[j].entry
		}
		return hits[i].keyword < hits[j].keyword
	})
	return hits
}

// Any reports whether any keyword occurs in normalized text.
func (t *Table) Any(text string) bool {
	return len(t.Hits(text)) > 0
}

// First returns the label of the first entry, in table order, with a hit.
func (t *Table) First(text string) (string, bool) {
	hits := t.Hits(text)
	if len(hits) == 0 {
		return "", false
	}
	return hits[0].Label, true
}

// Keywords returns the distinct keywords with a hit, ordered by where they
// first occur in the text. Ties keep table order.
func (t *Table) Keywords(text string) []string {
	hits := t.Hits(text)
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Position < hits[j].Position
	})

	var keywords []string
	seen := make(map[string]bool)
	for _, h := range hits {
		if !seen[h.Keyword] {
			seen[h.Keyword] = true
			keywords = append(keywords, h.Keyword)
		}
	}
	return keywords
}

// EntryFor returns the first entry, in table order, listing keyword.
func (t *Table) EntryFor(keyword string) (Entry, bool) {
	keyword = Normalize(keyword)
	for _, e := range t.entries {
		for _, kw := range e.Keywords {
			if kw == keyword {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// LabelsByPosition returns the distinct labels with a hit, ordered by where
// they first occur in the text. Ties keep table order.
func (t *Table) LabelsByPosition(text string) []string {
	hits := t.Hits(text)

	earliest := make(map[string]int)
	var labels []string
	for _, h := range hits {
		if at, ok := earliest[h.Label]; !ok {
			earliest[h.Label] = h.Position
			labels = append(labels, h.Label)
		} else if h.Position < at {
			earliest[h.Label] = h.Position
		}
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return earliest[labels[i]] < earliest[labels[j]]
	})
	return labels
}

// ContainsWord reports whether kw occurs in normalized text as a whole word
// or in a plural form.
func ContainsWord(text, kw string) bool {
	if kw == "" {
		return false
	}
	padded := " " + text + " "
	for _, v := range wordForms(kw) {
		if strings.Contains(padded, v) {
			return true
		}
	}
	return false
}

// CountWords counts how many of keywords occur in normalized text.
func CountWords(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if ContainsWord(text, kw) {
			n++
		}
	}
	return n
}

func wordForms(kw string) []string {
	return []string{" " + kw + " ", " " + kw + "s ", " " + kw + "es "}
}
