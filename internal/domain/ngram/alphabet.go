// Package ngram computes weighted n-gram statistics over a lexicon.
//
// Every word contributes its weight to each of its contiguous substrings.
// Substrings are canonicalized first ("qu" becomes Q, foldable y and w pick
// up a Y or W marker) and accumulated in a bucket indexed by canonical
// length. Once all words are in, the buckets are split into vowel-only and
// consonant-only tables.
//
// A Table is NOT safe for concurrent use. Analyze parallelizes by giving each
// worker its own Table and merging them once every worker is done.
package ngram

// Symbol sets, ordered by frequency in English.
// Y and W stand for y and w acting as vowels; Q stands for "qu".
const (
	Vowels     = "eoaiuYW"
	Consonants = "tnhsrldymwgcfbpkvjxzqQ"
)

// Marker symbols emitted by Canonicalize.
const (
	MarkerQ = 'Q'
	MarkerY = 'Y'
	MarkerW = 'W'
)

var (
	vowelSet     = makeSet(Vowels)
	consonantSet = makeSet(Consonants)
)

func makeSet(symbols string) [256]bool {
	var set [256]bool
	for i := 0; i < len(symbols); i++ {
		set[symbols[i]] = true
	}
	return set
}

// IsVowel reports whether c is in the vowel set.
func IsVowel(c byte) bool { return vowelSet[c] }

// IsConsonant reports whether c is in the consonant set.
func IsConsonant(c byte) bool { return consonantSet[c] }

// allIn reports whether every byte of s is in set. Empty strings are not.
func allIn(s string, set *[256]bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !set[s[i]] {
			return false
		}
	}
	return true
}
