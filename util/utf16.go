package util

import (
	"unicode/utf16"
	"unicode/utf8"
)

// DecodeUTF16 converts UTF-16 code units to a string without losing any of them. Unpaired surrogates, which Java
// and Windows strings may hold, are kept in their generalized UTF-8 form (WTF-8) instead of becoming U+FFFD, so
// EncodeUTF16 returns the original code units.
func DecodeUTF16(u []uint16) string {
	b := make([]byte, 0, len(u)*3)
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		if !utf16.IsSurrogate(c) {
			b = utf8.AppendRune(b, c)
			continue
		}

		if i+1 < len(u) {
			if r := utf16.DecodeRune(c, rune(u[i+1])); r != utf8.RuneError {
				b = utf8.AppendRune(b, r)
				i++
				continue
			}
		}

		b = append(b, 0xe0|byte(c>>12), 0x80|byte(c>>6)&0x3f, 0x80|byte(c)&0x3f)
	}

	return string(b)
}

// EncodeUTF16 converts s to UTF-16 code units, restoring unpaired surrogates written by DecodeUTF16. Other invalid
// UTF-8 becomes U+FFFD. The result is not NUL terminated.
func EncodeUTF16(s string) []uint16 {
	u := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if c, ok := surrogateAt(s, i); ok {
			u = append(u, c)
			i += 3
			continue
		}

		r, n := utf8.DecodeRuneInString(s[i:])
		u = utf16.AppendRune(u, r)
		i += n
	}

	return u
}

// surrogateAt reports whether s holds the three byte encoding of a surrogate code point at i.
func surrogateAt(s string, i int) (uint16, bool) {
	if i+2 >= len(s) || s[i] != 0xed || s[i+1]&0xe0 != 0xa0 || s[i+2]&0xc0 != 0x80 {
		return 0, false
	}

	return 0xd000 | uint16(s[i+1]&0x3f)<<6 | uint16(s[i+2]&0x3f), true
}
