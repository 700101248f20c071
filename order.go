package canonjson

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// member is one object entry scheduled for emission.
type member struct {
	key string
	val Value
}

// sortedMembers returns the object's members ordered by ascending
// lexicographic comparison of the keys' UTF-16 code units, the order
// JavaScript string comparison produces. Keys are unique by construction, so
// ties cannot occur.
func sortedMembers(obj Object) []member {
	ms := make([]member, 0, len(obj))
	for k, v := range obj {
		ms = append(ms, member{key: k, val: v})
	}
	sort.Slice(ms, func(i, j int) bool { return lessUTF16(ms[i].key, ms[j].key) })
	return ms
}

// lessUTF16 reports whether x is lexicographically less than y when both are
// interpreted as UTF-16 code unit sequences, without materializing those
// sequences. The orders diverge from plain string comparison only when a
// supplementary-plane character (whose UTF-16 encoding starts at 0xD800)
// meets a BMP character above it.
func lessUTF16(x, y string) bool {
	// isUTF16Self reports whether r encodes as a single UTF-16 code unit.
	isUTF16Self := func(r rune) bool {
		return ('\u0000' <= r && r <= '\ud7ff') || ('\ue000' <= r && r <= '\uffff')
	}
	for {
		if len(x) == 0 || len(y) == 0 {
			return len(x) < len(y)
		}

		// ASCII fast path.
		if x[0] < utf8.RuneSelf || y[0] < utf8.RuneSelf {
			if x[0] != y[0] {
				return x[0] < y[0]
			}
			x, y = x[1:], y[1:]
			continue
		}

		rx, nx := utf8.DecodeRuneInString(x)
		ry, ny := utf8.DecodeRuneInString(y)
		switch {
		case isUTF16Self(rx) == isUTF16Self(ry):
			// Both runes are a single code unit, or both are surrogate
			// pairs; code point order and code unit order agree.
			if rx != ry {
				return rx < ry
			}
		case isUTF16Self(rx):
			// y's rune expands to a surrogate pair: compare rx against
			// the high surrogate, which can never equal a BMP code unit.
			hi, _ := utf16.EncodeRune(ry)
			return rx < hi
		default:
			hi, _ := utf16.EncodeRune(rx)
			return hi < ry
		}
		x, y = x[nx:], y[ny:]
	}
}
