package ngram

// Bucket accumulates the canonical grams of one canonical length.
// Total is the sum of every weight added to the bucket.
type Bucket struct {
	Grams map[string]float64
	Total float64
}

// Len returns the number of distinct canonical grams in the bucket.
func (b *Bucket) Len() int { return len(b.Grams) }

// Table holds the buckets of one analysis run, indexed by canonical length.
// Buckets[0] exists for index alignment and never receives a gram.
type Table struct {
	Buckets []Bucket
	Words   int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Add accumulates weight into the bucket of every canonical substring of word.
// Buckets grow to len(word)+1 the first time a word that long is seen.
func (t *Table) Add(word string, weight float64) {
	t.grow(len(word) + 1)
	EachSubstring(word, func(raw string) {
		c := Canonicalize(raw)
		b := &t.Buckets[len(c)]
		b.Grams[c] += weight
		b.Total += weight
	})
	t.Words++
}

// Merge adds every gram, bucket total and word count of other into t.
// Results do not depend on merge order beyond float rounding.
func (t *Table) Merge(other *Table) {
	t.grow(len(other.Buckets))
	for n := range other.Buckets {
		src := &other.Buckets[n]
		dst := &t.Buckets[n]
		for gram, w := range src.Grams {
			dst.Grams[gram] += w
		}
		dst.Total += src.Total
	}
	t.Words += other.Words
}

// GrandTotal returns the sum of all bucket totals.
func (t *Table) GrandTotal() float64 {
	var total float64
	for i := range t.Buckets {
		total += t.Buckets[i].Total
	}
	return total
}

// MaxLength returns the largest bucket index, or 0 for an empty table.
func (t *Table) MaxLength() int {
	if len(t.Buckets) == 0 {
		return 0
	}
	return len(t.Buckets) - 1
}

// grow extends Buckets to size n, keeping everything accumulated so far.
func (t *Table) grow(n int) {
	for len(t.Buckets) < n {
		t.Buckets = append(t.Buckets, Bucket{Grams: make(map[string]float64)})
	}
}
