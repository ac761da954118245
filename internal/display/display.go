// Package display turns calculator state into the text a renderer paints.
package display

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/numfmt"
)

// Magnitudes outside [expMin, expMax] switch to exponential notation.
const (
	expMin    = 1e-7
	expMax    = 1e12
	expDigits = 6
)

// grouping prints integers with en-US thousands separators.
var grouping = message.NewPrinter(language.AmericanEnglish)

// Format renders an operand for the result line.
//
// Non-zero magnitudes above 1e12 or below 1e-7 use exponential notation
// with six fractional digits. Everything else gets comma grouping on the
// integer part while the typed fraction, including a trailing ".", is kept
// verbatim. Sentinels are returned unchanged.
func Format(current string) string {
	if current == calc.ErrorText || current == calc.InfinityText {
		return current
	}

	num, err := strconv.ParseFloat(current, 64)
	if err != nil && !isRange(err) {
		return current
	}
	abs := math.Abs(num)
	if abs > expMax || (abs < expMin && num != 0) {
		return numfmt.Exponential(num, expDigits)
	}

	intPart, frac, hasPoint := strings.Cut(current, ".")
	grouped := groupInteger(intPart)
	if !hasPoint {
		return grouped
	}
	return grouped + "." + frac
}

// groupInteger rounds s to an integer and inserts thousands separators.
func groupInteger(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRange(err) {
		f = 0
	}
	r := math.Round(f)
	if r == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	return grouping.Sprintf("%d", int64(r))
}

func isRange(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

// Tier is the font-size step for the result line.
type Tier uint8

const (
	TierDefault Tier = iota
	TierMedium
	TierSmall
)

// TierFor picks the tier for a formatted result: more than 12 characters
// is small, more than 9 is medium.
func TierFor(text string) Tier {
	switch n := utf8.RuneCountInString(text); {
	case n > 12:
		return TierSmall
	case n > 9:
		return TierMedium
	default:
		return TierDefault
	}
}

// FontSize is the CSS font-size override; empty means the stylesheet
// default.
func (t Tier) FontSize() string {
	switch t {
	case TierSmall:
		return "32px"
	case TierMedium:
		return "38px"
	}
	return ""
}

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	}
	return "default"
}

// Screen is everything the renderer paints for one state.
type Screen struct {
	Result  string `json:"result"`
	History string `json:"history"`
	Tier    Tier   `json:"-"`
}

// Render formats a state snapshot.
func Render(s calc.State) Screen {
	result := Format(s.Current)
	return Screen{
		Result:  result,
		History: s.History(),
		Tier:    TierFor(result),
	}
}
