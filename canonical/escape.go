package canonical

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c is escaped by PercentEncode. The kept set
// is the unreserved marks plus the reserved URI delimiters, as in
// ECMAScript encodeURI.
func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}

	switch c {
	case '-', '_', '.', '~', '!', '*', '\'', '(', ')':
		return false
	case ';', ',', '/', '?', ':', '@', '&', '=', '+', '$', '#':
		return false
	}

	return true
}

// PercentEncode escapes s for transmission in a URI. Bytes outside the kept
// set, including '[', ']', '%', space and every byte of a multi-byte UTF-8
// sequence, are written as %XX with uppercase hex digits.
func PercentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}
