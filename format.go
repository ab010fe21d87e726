package scicalc

import (
	"math"
	"strconv"
	"strings"
)

// readableDigits is float64's round-trip decimal capacity; the display
// format uses it as the %G precision.
const readableDigits = 17

// readableDouble renders a result for display: shortest of fixed and
// scientific at 17 significant digits, uppercase exponent, trailing zeros
// stripped. IEEE-754 anomalies render the way C's %G prints them, since
// they are values here, not errors.
func readableDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NAN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	return stripZeros(strconv.FormatFloat(v, 'G', readableDigits, 64))
}

// stripZeros drops trailing fractional zeros from a %G-formatted number,
// and the decimal point itself when nothing follows it. The exponent part,
// if any, is untouched.
func stripZeros(s string) string {
	mantissa, exp := s, ""
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		mantissa, exp = s[:i], s[i:]
	}
	if strings.IndexByte(mantissa, '.') >= 0 {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}
	return mantissa + exp
}

// losslessDouble renders v as a hexadecimal float. The plotter feeds these
// strings into the variable cell so that the x coordinate it records and
// the value the evaluator parses back are the same double, bit for bit.
func losslessDouble(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}
