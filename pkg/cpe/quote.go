package cpe

import "strings"

// Quote re-quotes one raw attribute segment per the formatted string
// binding grammar (NISTIR 7695, 6.2.3).
//
// Letters, digits and underscore pass through unchanged. A backslash
// introduces an already-quoted pair and is copied through verbatim
// together with the character it quotes, without re-validation. An
// unquoted asterisk is legal only at the first or last position of the
// segment. An unquoted question mark is legal at the first or last
// position, or as part of a contiguous leading or trailing run. Every
// other character is quoted with a backslash.
//
// The scan aborts on the first placement violation; no partial result
// is returned.
func Quote(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	// embedded tracks whether the previous output was ordinary body
	// content rather than an unquoted wildcard. The question mark run
	// rules depend on it.
	embedded := false

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
			i++
			embedded = true

		case c == '\\':
			// Already-quoted pair from the caller, trusted verbatim.
			b.WriteByte(c)
			if i+1 < len(s) {
				b.WriteByte(s[i+1])
			}
			i += 2
			embedded = true

		case c == '*':
			if i != 0 && i != len(s)-1 {
				return "", ErrWildcardPlacement
			}
			b.WriteByte(c)
			i++
			embedded = true

		case c == '?':
			// Legal at a boundary, continuing a leading run, or
			// starting a trailing run.
			leading := !embedded && i > 0 && s[i-1] == '?'
			trailing := embedded && i+1 < len(s) && s[i+1] == '?'
			if i != 0 && i != len(s)-1 && !leading && !trailing {
				return "", ErrSingleCharPlacement
			}
			b.WriteByte(c)
			i++
			embedded = false

		default:
			b.WriteByte('\\')
			b.WriteByte(c)
			i++
			embedded = true
		}
	}

	return b.String(), nil
}

// isUnreserved reports whether c passes through a quoted literal
// unescaped.
func isUnreserved(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
