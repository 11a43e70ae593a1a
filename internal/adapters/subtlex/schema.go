package subtlex

import (
	"fmt"
	"sort"

	"github.com/corey/ngram/internal/ports"
)

// ColumnType is the declared type of a SUBTLEX column.
type ColumnType int

const (
	Int ColumnType = iota
	Float
	Text
)

func (t ColumnType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "text"
	}
}

// WordColumn holds the word of each row.
const WordColumn = "Word"

// FrequencyColumn is the word frequency per million words, the default weight.
const FrequencyColumn = "SUBTLWF"

// Schema lists every SUBTLEX-US column and its type. A file must carry
// exactly these columns, in any order.
//
//	FREQcount            raw token count in the subtitle corpus
//	CDcount              number of films the word appears in (contextual diversity)
//	FREQlow, Cdlow       the same two counts restricted to lowercase occurrences
//	SUBTLWF              frequency per million words
//	Lg10WF               log10(FREQcount + 1)
//	SUBTLCD              percentage of films the word appears in
//	Lg10CD               log10(CDcount + 1)
//	Dom_PoS_SUBTLEX      dominant part of speech
//	Freq_dom_PoS_SUBTLEX count for the dominant part of speech
//	Percentage_dom_PoS   share of occurrences with the dominant part of speech
//	All_PoS_SUBTLEX      every part of speech, dot separated
//	All_freqs_SUBTLEX    counts matching All_PoS_SUBTLEX
//	Zipf-value           Zipf-scale frequency
var Schema = map[string]ColumnType{
	WordColumn:             Text,
	"FREQcount":            Int,
	"CDcount":              Int,
	"FREQlow":              Int,
	"Cdlow":                Int,
	FrequencyColumn:        Float,
	"Lg10WF":               Float,
	"SUBTLCD":              Float,
	"Lg10CD":               Float,
	"Dom_PoS_SUBTLEX":      Text,
	"Freq_dom_PoS_SUBTLEX": Int,
	"Percentage_dom_PoS":   Float,
	"All_PoS_SUBTLEX":      Text,
	"All_freqs_SUBTLEX":    Text,
	"Zipf-value":           Float,
}

// validateHeader checks names against Schema by set equality.
func validateHeader(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: duplicate column %q", ports.ErrSchema, name)
		}
		seen[name] = true
	}
	for _, name := range names {
		if _, ok := Schema[name]; !ok {
			return fmt.Errorf("%w: unexpected column %q", ports.ErrSchema, name)
		}
	}

	var missing []string
	for name := range Schema {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing required columns %q", ports.ErrSchema, missing)
	}
	return nil
}
