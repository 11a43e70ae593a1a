package ngram

// Gram is one raw substring of a word together with its canonical form.
type Gram struct {
	Raw       string
	Canonical string
}

// EachSubstring calls fn for every contiguous substring of word, shortest
// first and left to right within a length: n = 1..len(word), i = 0..len(word)-n.
// A word of length L yields L*(L+1)/2 substrings.
func EachSubstring(word string, fn func(raw string)) {
	for n := 1; n <= len(word); n++ {
		for i := 0; i+n <= len(word); i++ {
			fn(word[i : i+n])
		}
	}
}

// Extract returns every substring of word with its canonical form, in
// EachSubstring order.
func Extract(word string) []Gram {
	grams := make([]Gram, 0, len(word)*(len(word)+1)/2)
	EachSubstring(word, func(raw string) {
		grams = append(grams, Gram{Raw: raw, Canonical: Canonicalize(raw)})
	})
	return grams
}
