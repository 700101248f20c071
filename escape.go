package canonjson

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// appendQuoted appends the canonical quoted form of s. Output is pure ASCII:
// the two-character escapes for quote, backslash, and the common controls,
// \u00xx for the remaining controls, a raw byte for printable ASCII, and
// \uxxxx (a surrogate pair for characters past U+FFFF) for everything from
// U+007F up. Hex digits are lowercase.
//
// s must be valid UTF-8 encoding Unicode scalar values. Surrogate code
// points smuggled in via their 3-byte encoding fail with invalid_surrogate;
// any other invalid byte sequence fails with invalid_utf8.
func appendQuoted(dst []byte, s string) ([]byte, error) {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			i++
			switch {
			case c == '"':
				dst = append(dst, '\\', '"')
			case c == '\\':
				dst = append(dst, '\\', '\\')
			case c == '\b':
				dst = append(dst, '\\', 'b')
			case c == '\f':
				dst = append(dst, '\\', 'f')
			case c == '\n':
				dst = append(dst, '\\', 'n')
			case c == '\r':
				dst = append(dst, '\\', 'r')
			case c == '\t':
				dst = append(dst, '\\', 't')
			case c < 0x20 || c == 0x7f:
				dst = appendEscapedUTF16(dst, uint16(c))
			default:
				dst = append(dst, c)
			}
			continue
		}
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			if unit, ok := surrogateCodeUnit(s[i:]); ok {
				return dst, newIssue(CodeInvalidSurrogate, map[string]string{"unit": formatCodeUnit(unit)})
			}
			return dst, newIssue(CodeInvalidUTF8, nil)
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			dst = appendEscapedUTF16(dst, uint16(hi))
			dst = appendEscapedUTF16(dst, uint16(lo))
		} else {
			dst = appendEscapedUTF16(dst, uint16(r))
		}
		i += n
	}
	return append(dst, '"'), nil
}

// appendEscapedUTF16 appends one \uxxxx escape for a UTF-16 code unit.
func appendEscapedUTF16(dst []byte, x uint16) []byte {
	return append(dst, '\\', 'u', hexDigits[(x>>12)&0xf], hexDigits[(x>>8)&0xf], hexDigits[(x>>4)&0xf], hexDigits[x&0xf])
}

// surrogateCodeUnit recognizes the 3-byte encoding of a surrogate code point
// (0xED 0xA0..0xBF 0x80..0xBF, the WTF-8 extension utf8.DecodeRune refuses)
// and returns the UTF-16 code unit it spells.
func surrogateCodeUnit(s string) (uint16, bool) {
	if len(s) >= 3 && s[0] == 0xed && s[1] >= 0xa0 && s[1] <= 0xbf && s[2] >= 0x80 && s[2] <= 0xbf {
		return 0xd000 | uint16(s[1]&0x3f)<<6 | uint16(s[2]&0x3f), true
	}
	return 0, false
}

// formatCodeUnit renders a code unit as U+XXXX for error messages.
func formatCodeUnit(x uint16) string {
	const upper = "0123456789ABCDEF"
	return string([]byte{'U', '+', upper[(x>>12)&0xf], upper[(x>>8)&0xf], upper[(x>>4)&0xf], upper[x&0xf]})
}
