package ngram

// Canonicalize recodes the digraphs of s into single marker symbols.
// One left-to-right scan with one symbol of lookahead; the current symbol is
// always emitted, and the next one decides what else happens:
//
//	q+u                     -> Q replaces q, u is consumed
//	{a,e,o,u}|consonant + y -> Y follows the current symbol, y is consumed
//	{a,e,o} + w             -> W follows the current symbol, w is consumed
//
// Canonicalize never lengthens its input. It only sees s, so a substring that
// cuts a digraph in half canonicalizes differently than the same span would
// inside the whole word. Callers rely on that: it is applied per substring.
func Canonicalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c0 := s[i]
		i++
		out = append(out, c0)
		if i >= len(s) {
			break
		}

		c1 := s[i]
		switch {
		case c0 == 'q' && c1 == 'u':
			out[len(out)-1] = MarkerQ
			i++
		case c1 == 'y' && foldsY(c0):
			out = append(out, MarkerY)
			i++
		case c1 == 'w' && foldsW(c0):
			out = append(out, MarkerW)
			i++
		}
	}
	return string(out)
}

func foldsY(c byte) bool {
	switch c {
	case 'a', 'e', 'o', 'u':
		return true
	}
	return IsConsonant(c)
}

func foldsW(c byte) bool {
	return c == 'a' || c == 'e' || c == 'o'
}
