package canonjson

import (
	"math"
	"strconv"
)

// appendNumber appends the canonical decimal form of f: the shortest digit
// string that parses back to the same double, rendered without an exponent
// while 1e-6 <= |f| < 1e21 and with one otherwise. This reproduces
// ECMAScript Number-to-String output, so "1e21" becomes "1e+21", "100"
// stays "100", and negative zero collapses to "0".
func appendNumber(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, newIssue(CodeNonFiniteNumber, map[string]string{"value": strconv.FormatFloat(f, 'g', -1, 64)})
	}
	if f == 0 {
		// Covers -0: the canonical form drops the sign.
		return append(dst, '0'), nil
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// strconv pads single-digit exponents: rewrite e-09 to e-9.
		if n := len(dst); n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}
