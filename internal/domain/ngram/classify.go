package ngram

// Class is the symbol class of a canonical gram.
type Class int

const (
	Unclassified Class = iota
	VowelOnly
	ConsonantOnly
)

func (c Class) String() string {
	switch c {
	case VowelOnly:
		return "vowel"
	case ConsonantOnly:
		return "consonant"
	default:
		return "mixed"
	}
}

// ClassOf returns VowelOnly when every symbol of gram is a vowel,
// ConsonantOnly when every symbol is a consonant, Unclassified otherwise.
func ClassOf(gram string) Class {
	switch {
	case allIn(gram, &vowelSet):
		return VowelOnly
	case allIn(gram, &consonantSet):
		return ConsonantOnly
	default:
		return Unclassified
	}
}

// Subset is a classified slice of a Table across all buckets.
type Subset struct {
	Grams map[string]float64
	Total float64
}

func newSubset() Subset {
	return Subset{Grams: make(map[string]float64)}
}

func (s *Subset) add(gram string, w float64) {
	s.Grams[gram] += w
	s.Total += w
}

// Classification holds the vowel-only and consonant-only grams of a Table.
// Grams in neither stay only in their bucket.
type Classification struct {
	Vowels     Subset
	Consonants Subset
}

// Classify partitions the grams of every bucket of t. Run it once, after
// the last word has been added; it does not modify t.
func Classify(t *Table) *Classification {
	c := &Classification{
		Vowels:     newSubset(),
		Consonants: newSubset(),
	}
	for n := range t.Buckets {
		for gram, w := range t.Buckets[n].Grams {
			switch ClassOf(gram) {
			case VowelOnly:
				c.Vowels.add(gram, w)
			case ConsonantOnly:
				c.Consonants.add(gram, w)
			}
		}
	}
	return c
}
