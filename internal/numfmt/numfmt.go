// Package numfmt renders float64 values the way a browser's Number type
// prints them.
//
// The calculator stores every operand as a decimal lexeme. The conversion
// rules here follow Number.prototype.toString and
// Number.prototype.toExponential rather than strconv's defaults, with one
// exception: magnitudes in [1e-7, 1e-6) stay in fixed notation so their
// lexemes keep parsing as plain decimals ("0.0000001" where a browser
// prints "1e-7").
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Fixed notation is used for magnitudes in [fixedMin, fixedMax).
const (
	fixedMin = 1e-7
	fixedMax = 1e21
)

// JSString returns the shortest decimal string that round-trips f.
//
// Magnitudes in [1e-7, 1e21) use fixed notation ("0.1", "123.45"); all
// others use exponential notation with an unpadded exponent ("1e+21",
// "1.5e-7"). Both signed zeros print as "0".
func JSString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= fixedMin && abs < fixedMax {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
}

// exactDigits is enough precision for the full decimal expansion of any
// float64.
const exactDigits = 767

// Exponential renders f with exactly digits fractional digits in the
// mantissa, e.g. Exponential(12345000000000, 6) == "1.234500e+13".
// Exact ties round away from zero, as toExponential does; strconv would
// round them to even.
func Exponential(f float64, digits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case digits < 0 || digits >= exactDigits:
		return trimExponent(strconv.FormatFloat(f, 'e', digits, 64))
	case f == 0:
		// toExponential drops the sign of negative zero.
		return trimExponent(strconv.FormatFloat(0, 'e', digits, 64))
	}

	exact := strconv.FormatFloat(math.Abs(f), 'e', exactDigits, 64)
	e := strings.IndexByte(exact, 'e')
	mantissa := exact[:1] + exact[2:e]
	exp, _ := strconv.Atoi(exact[e+1:])

	kept := []byte(mantissa[:digits+1])
	if mantissa[digits+1] >= '5' {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept[0] = '1'
			exp++
		} else {
			kept[i]++
		}
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	b.WriteByte(kept[0])
	if digits > 0 {
		b.WriteByte('.')
		b.Write(kept[1:])
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// trimExponent strips leading zeros from the exponent: "e-07" becomes "e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:i], s[i+1], s[i+2:]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
