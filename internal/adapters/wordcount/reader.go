// Package wordcount reads flat dictionary files of whitespace-separated
// "word count" pairs, one lexicon entry per pair.
package wordcount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/corey/ngram/internal/domain/lexicon"
	"github.com/corey/ngram/internal/ports"
)

// Dictionary is a validated word-count file.
type Dictionary struct {
	path    string
	entries lexicon.Static
}

// Open reads every pair in the file at path until EOF.
// Words are lowercased and must be ASCII letters; counts must be
// non-negative integers. A dangling word without a count, a read failure
// before EOF, and a duplicate word are errors.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordcount: %w: %v", ports.ErrInputUnreadable, err)
	}
	defer f.Close()

	entries, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("wordcount: %s: %w", path, err)
	}
	return &Dictionary{path: path, entries: entries}, nil
}

func read(r io.Reader) (lexicon.Static, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	counts := make(map[string]float64)
	seen := lexicon.Seen{}
	pair := 0
	for sc.Scan() {
		pair++
		raw := sc.Text()
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ports.ErrInputUnreadable, err)
			}
			return nil, fmt.Errorf("pair %d: %w: word %q has no count", pair, ports.ErrSchema, raw)
		}
		countText := sc.Text()

		word, err := lexicon.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", pair, err)
		}
		if err := seen.Mark(word); err != nil {
			return nil, fmt.Errorf("pair %d: %w", pair, err)
		}

		n, err := strconv.ParseInt(countText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w: count %q for word %q: %v", pair, ports.ErrValueParse, countText, word, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("pair %d: %w: negative count %d for word %q", pair, ports.ErrValueParse, n, word)
		}
		counts[word] = float64(n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrInputUnreadable, err)
	}
	return lexicon.FromMap(counts), nil
}

// Path returns the file the dictionary was read from.
func (d *Dictionary) Path() string { return d.path }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries implements ports.Lexicon.
func (d *Dictionary) Entries() []ports.Entry { return d.entries }
