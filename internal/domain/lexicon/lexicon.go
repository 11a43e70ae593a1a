// Package lexicon holds the word rules every lexicon source shares and a
// plain in-memory ports.Lexicon.
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/ngram/internal/ports"
)

// Normalize lowercases raw and checks that the result is a non-empty run of
// ASCII letters. Failures wrap ports.ErrDataValidity and name the word.
func Normalize(raw string) (string, error) {
	word := strings.ToLower(raw)
	if word == "" {
		return "", fmt.Errorf("%w: invalid word %q: empty", ports.ErrDataValidity, raw)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: invalid word %q: non-alphabetic character %q", ports.ErrDataValidity, word, c)
		}
	}
	return word, nil
}

// Seen tracks normalized words to reject duplicates.
type Seen map[string]struct{}

// Mark records word, or fails with ports.ErrDataValidity naming the word
// when it was recorded before.
func (s Seen) Mark(word string) error {
	if _, dup := s[word]; dup {
		return fmt.Errorf("%w: duplicate word %q", ports.ErrDataValidity, word)
	}
	s[word] = struct{}{}
	return nil
}

// Static is a fixed, in-memory lexicon.
type Static []ports.Entry

// Entries implements ports.Lexicon.
func (s Static) Entries() []ports.Entry { return s }

// FromMap builds a Static lexicon sorted by word, so repeated runs over the
// same data see the same sequence.
func FromMap(weights map[string]float64) Static {
	entries := make(Static, 0, len(weights))
	for word, w := range weights {
		entries = append(entries, ports.Entry{Word: word, Weight: w})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	return entries
}
