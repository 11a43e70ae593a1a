// Package report turns a finished analysis into output models: a ranked
// top-K summary per canonical length, or a full dump of every table.
//
// Ranking order is weight descending, then canonical gram ascending, so equal
// weights always print in the same order.
package report

import (
	"sort"

	"github.com/corey/ngram/internal/domain/ngram"
)

// Ranked is one gram of a summary bucket.
type Ranked struct {
	Gram    string  `json:"gram"`
	Weight  float64 `json:"weight"`
	Percent float64 `json:"percent"` // weight / bucket total * 100
}

// BucketSummary is the top of one non-empty bucket.
type BucketSummary struct {
	Length   int      `json:"length"`
	Distinct int      `json:"distinct"`
	Total    float64  `json:"total"`
	Top      []Ranked `json:"top"`
}

// Summary is the ranked report of one analysis run.
type Summary struct {
	K          int             `json:"k"`
	Buckets    []BucketSummary `json:"buckets"`
	Words      int             `json:"words"`
	GrandTotal float64         `json:"grand_total"`
}

// Rank builds the ranked summary of t. Empty buckets are skipped; every other
// bucket keeps its min(k, size) heaviest grams. k must be at least 1.
func Rank(t *ngram.Table, k int) *Summary {
	s := &Summary{
		K:          k,
		Words:      t.Words,
		GrandTotal: t.GrandTotal(),
	}
	for n := range t.Buckets {
		b := &t.Buckets[n]
		if b.Len() == 0 {
			continue
		}
		s.Buckets = append(s.Buckets, BucketSummary{
			Length:   n,
			Distinct: b.Len(),
			Total:    b.Total,
			Top:      topK(b, k),
		})
	}
	return s
}

// topK sorts the bucket's grams by weight descending (gram ascending on ties)
// and keeps the first k.
func topK(b *ngram.Bucket, k int) []Ranked {
	sorted := make([]Ranked, 0, len(b.Grams))
	for gram, w := range b.Grams {
		sorted = append(sorted, Ranked{Gram: gram, Weight: w})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		return sorted[i].Gram < sorted[j].Gram
	})

	limit := k
	if limit > len(sorted) {
		limit = len(sorted)
	}
	top := sorted[:limit]
	for i := range top {
		if b.Total != 0 {
			top[i].Percent = top[i].Weight / b.Total * 100
		}
	}
	return top
}

// Dump is the structured form of a whole run: every bucket by canonical
// length (empty ones included, so the array index is the length), plus the
// vowel-only and consonant-only tables. It carries no totals or percentages.
type Dump struct {
	NGrams     []map[string]float64 `json:"ngrams"`
	Vowels     map[string]float64   `json:"vowels"`
	Consonants map[string]float64   `json:"consonants"`
}

// NewDump builds the structured dump of a run.
func NewDump(t *ngram.Table, c *ngram.Classification) *Dump {
	d := &Dump{
		NGrams:     make([]map[string]float64, len(t.Buckets)),
		Vowels:     c.Vowels.Grams,
		Consonants: c.Consonants.Grams,
	}
	for n := range t.Buckets {
		grams := t.Buckets[n].Grams
		if grams == nil {
			grams = map[string]float64{}
		}
		d.NGrams[n] = grams
	}
	return d
}
