package chat

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Censor masks blacklisted words in chat messages. Matching runs over a
// normalized view of the text (lowercased, leet speak folded, punctuation and
// spacing stripped) so "b4d-w0rd" still hits the "badword" pattern, while the
// mask is applied to the original runes.
type Censor struct {
	matcher  *goahocorasick.Machine
	maskRune rune
}

// NewCensor builds the Aho-Corasick automaton from the blacklist. An empty
// blacklist is an error; callers that have no blacklist should keep a nil
// *Censor instead.
func NewCensor(words []string, maskRune rune) (*Censor, error) {
	patterns := make([][]rune, len(words))
	for i, w := range words {
		norm, _ := normalize(w)
		patterns[i] = norm
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{matcher: m, maskRune: maskRune}, nil
}

// Apply returns the message with every blacklisted span masked, plus the
// normalized words that matched. A nil censor passes text through untouched.
func (c *Censor) Apply(text string) (string, []string) {
	if c == nil {
		return text, nil
	}

	norm, origIdx := normalize(text)
	if len(norm) == 0 {
		return text, nil
	}

	hits := c.matcher.MultiPatternSearch(norm, false)
	if len(hits) == 0 {
		return text, nil
	}

	out := []rune(text)
	var found []string
	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		found = append(found, string(hit.Word))
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			out[i] = c.maskRune
		}
	}
	return string(out), found
}

// normalize lowercases and folds the input, dropping noise runes. The second
// return value maps each normalized rune back to its original index.
func normalize(input string) ([]rune, []int) {
	orig := []rune(input)
	norm := make([]rune, 0, len(orig))
	origIdx := make([]int, 0, len(orig))

	for i, r := range orig {
		r = foldLeet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

// foldLeet maps common leet speak substitutions back to letters.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	}
	return r
}
