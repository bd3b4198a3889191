// Package moderation masks blacklisted words in outgoing chat lines.
// Matching ignores case, punctuation and common leet substitutions, so
// "B.4.d.g.e.r" is caught by "badger".
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator is safe for concurrent use once built.
type Moderator struct {
	matcher *goahocorasick.Machine
	mask    rune
}

// folded is a text reduced to its significant runes, each remembering where it came from.
type folded struct {
	runes  []rune
	origin []int
}

// NewModerator builds the automaton. Words reduced to nothing, like "...", are skipped.
// With no usable word the moderator lets every line through.
func NewModerator(words []string, mask rune) (*Moderator, error) {
	var patterns [][]rune
	for _, w := range words {
		if p := fold([]rune(w)).runes; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	m := &Moderator{mask: mask}
	if len(patterns) == 0 {
		return m, nil
	}
	m.matcher = new(goahocorasick.Machine)
	if err := m.matcher.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// Censor masks every match, punctuation inside it included, and returns the
// masked text with the words found, in order.
func (m *Moderator) Censor(text string) (string, []string) {
	if m == nil || m.matcher == nil || text == "" {
		return text, nil
	}
	original := []rune(text)
	f := fold(original)
	if len(f.runes) == 0 {
		return text, nil
	}
	terms := m.matcher.MultiPatternSearch(f.runes, false)
	if len(terms) == 0 {
		return text, nil
	}

	var words []string
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(f.origin) {
			continue
		}
		for i := f.origin[start]; i <= f.origin[end-1]; i++ {
			original[i] = m.mask
		}
		words = append(words, string(term.Word))
	}
	return string(original), words
}

func fold(in []rune) folded {
	out := folded{runes: make([]rune, 0, len(in)), origin: make([]int, 0, len(in))}
	for i, r := range in {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out.runes = append(out.runes, unicode.ToLower(r))
		out.origin = append(out.origin, i)
	}
	return out
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
