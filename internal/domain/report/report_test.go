package report

import (
	"encoding/json"
	"testing"

	"github.com/corey/ngram/internal/domain/ngram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieTable() *ngram.Table {
	return &ngram.Table{
		Buckets: []ngram.Bucket{
			{Grams: map[string]float64{}},
			{Grams: map[string]float64{"a": 5, "b": 3, "c": 3}, Total: 11},
		},
		Words: 3,
	}
}

// =============================================================================
// Ranked summary — top-K per bucket with share of bucket total
// =============================================================================

func TestRank_TopTwoWithTie(t *testing.T) {
	s := Rank(tieTable(), 2)
	require.Len(t, s.Buckets, 1)

	top := s.Buckets[0].Top
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Gram)
	assert.Contains(t, []string{"b", "c"}, top[1].Gram)
	assert.InDelta(t, 5.0/11.0*100, top[0].Percent, 1e-9)
	assert.InDelta(t, 3.0/11.0*100, top[1].Percent, 1e-9)
}

func TestRank_TieBreakIsLexicographic(t *testing.T) {
	for i := 0; i < 20; i++ {
		top := Rank(tieTable(), 3).Buckets[0].Top
		require.Len(t, top, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{top[0].Gram, top[1].Gram, top[2].Gram})
	}
}

func TestRank_KLargerThanBucket(t *testing.T) {
	s := Rank(tieTable(), 100)
	require.Len(t, s.Buckets, 1)
	assert.Len(t, s.Buckets[0].Top, 3)
	assert.Equal(t, 3, s.Buckets[0].Distinct)
}

func TestRank_SkipsEmptyBucketsKeepsLength(t *testing.T) {
	tbl := ngram.NewTable()
	tbl.Add("qu", 1) // bucket 2 stays empty: "qu" canonicalizes to Q

	s := Rank(tbl, 10)
	require.Len(t, s.Buckets, 1)
	assert.Equal(t, 1, s.Buckets[0].Length)
	assert.Equal(t, 3, s.Buckets[0].Distinct)
	assert.Equal(t, 1, s.Words)
	assert.Equal(t, 3.0, s.GrandTotal)
}

func TestRank_PercentagesSumToHundredWhenComplete(t *testing.T) {
	tbl := ngram.NewTable()
	tbl.Add("happy", 2)
	tbl.Add("snow", 3)

	s := Rank(tbl, 100)
	for _, b := range s.Buckets {
		sum := 0.0
		for _, r := range b.Top {
			sum += r.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "bucket %d", b.Length)
	}
}

func TestRank_Empty(t *testing.T) {
	s := Rank(ngram.NewTable(), 10)
	assert.Empty(t, s.Buckets)
	assert.Zero(t, s.Words)
	assert.Zero(t, s.GrandTotal)
}

// =============================================================================
// Structured dump — buckets by index, vowel and consonant tables
// =============================================================================

func TestDump_JSONShape(t *testing.T) {
	tbl := ngram.NewTable()
	tbl.Add("qu", 2)
	d := NewDump(tbl, ngram.Classify(tbl))

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 3)
	assert.Contains(t, got, "ngrams")
	assert.Contains(t, got, "vowels")
	assert.Contains(t, got, "consonants")

	var ngrams []map[string]float64
	require.NoError(t, json.Unmarshal(got["ngrams"], &ngrams))
	require.Len(t, ngrams, 3)
	assert.Empty(t, ngrams[0])
	assert.Equal(t, map[string]float64{"q": 2, "u": 2, "Q": 2}, ngrams[1])
	assert.NotNil(t, ngrams[2])
	assert.Empty(t, ngrams[2])

	assert.JSONEq(t, `{"u":2}`, string(got["vowels"]))
	assert.JSONEq(t, `{"q":2,"Q":2}`, string(got["consonants"]))
}

func TestDump_EmptyRun(t *testing.T) {
	tbl := ngram.NewTable()
	data, err := json.Marshal(NewDump(tbl, ngram.Classify(tbl)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ngrams":[],"vowels":{},"consonants":{}}`, string(data))
}
