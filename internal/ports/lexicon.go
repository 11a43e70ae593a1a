package ports

import "errors"

// Entry is one weighted word of a lexicon. Word holds lowercase ASCII
// letters only; Weight is a frequency or a raw count.
type Entry struct {
	Word   string
	Weight float64
}

// Lexicon is anything that can hand the analysis a sequence of weighted
// words. How the sequence was built (typed CSV columns, a flat count file,
// a cache) is invisible to the consumer.
type Lexicon interface {
	Entries() []Entry
}

// Error taxonomy shared by every lexicon source. Adapters wrap one of these
// with path, line, column, value or word context; callers test with errors.Is.
var (
	// ErrInputUnreadable: the file is missing, cannot be opened, or a read
	// failed before EOF.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrSchema: missing, unexpected or duplicate column, or a row whose
	// width differs from the header.
	ErrSchema = errors.New("schema violation")

	// ErrValueParse: a value does not match its column's declared type.
	ErrValueParse = errors.New("value parse failure")

	// ErrDataValidity: an empty or non-alphabetic word, or a duplicate word.
	ErrDataValidity = errors.New("invalid data")
)
