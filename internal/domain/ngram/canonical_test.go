package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Canonicalization — qu/y/w folding over a single substring
// =============================================================================

func TestCanonicalize_Folds(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"y", "y"},
		{"quiet", "Qiet"},
		{"happy", "happY"},
		{"snow", "snoW"},
		{"yellow", "yelloW"},
		{"away", "aWaY"},
		{"boy", "boY"},
		{"queue", "Qeue"},
		{"sky", "skY"},
		{"eye", "eYe"},
		{"yay", "yaY"},
		{"aqu", "aQ"},
		{"quy", "Qy"},
		{"qy", "qY"},
		{"uy", "uY"},
		{"yy", "yY"},
		{"awy", "aWy"},
		{"ayw", "aYw"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Canonicalize(tc.in), "input: %q", tc.in)
	}
}

func TestCanonicalize_NoFold(t *testing.T) {
	// i never folds a following y; only a/e/o fold a following w.
	for _, s := range []string{"iy", "iw", "uw", "ww", "strength", "q", "u", "uq"} {
		assert.Equal(t, s, Canonicalize(s), "input: %q", s)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	for _, s := range []string{"quiet", "happy", "snow", "yellow", "away", "boy", "queue", "sky", "eye", "strength"} {
		once := Canonicalize(s)
		assert.Equal(t, once, Canonicalize(once), "input: %q", s)
	}
}

func TestCanonicalize_NeverLengthens(t *testing.T) {
	for _, s := range []string{"quququ", "ayayay", "owowow", "quickly", "yawning", "eyewitness"} {
		assert.LessOrEqual(t, len(Canonicalize(s)), len(s), "input: %q", s)
	}
}

func TestCanonicalize_PerSubstringBoundary(t *testing.T) {
	// Inside "quay" the u belongs to Q; cut at "ua" the u stays a u and
	// "uay" folds the y.
	assert.Equal(t, "QaY", Canonicalize("quay"))
	assert.Equal(t, "uaY", Canonicalize("uay"))
}

// =============================================================================
// Alphabet — vowel and consonant sets
// =============================================================================

func TestAlphabet_DisjointAndComplete(t *testing.T) {
	symbols := "abcdefghijklmnopqrstuvwxyz" + "YWQ"
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		assert.True(t, IsVowel(c) != IsConsonant(c), "symbol %q must be in exactly one set", c)
	}
	assert.Equal(t, len(symbols), len(Vowels)+len(Consonants))
}

func TestAlphabet_MarkerClasses(t *testing.T) {
	assert.True(t, IsVowel(MarkerY))
	assert.True(t, IsVowel(MarkerW))
	assert.True(t, IsConsonant(MarkerQ))
	assert.True(t, IsConsonant('y'))
	assert.True(t, IsConsonant('w'))
	assert.True(t, IsConsonant('q'))
}
