package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/tally/internal/numfmt"
)

// Sentinel texts shown in place of an unrepresentable result.
const (
	ErrorText    = "Error"
	InfinityText = "Infinity"
)

// Kind tags a Value.
type Kind uint8

const (
	KindNumber Kind = iota
	KindError
	KindInfinity
)

// Value is an operand: either a decimal lexeme or one of the two sentinels.
// The zero Value is the number "0".
type Value struct {
	kind   Kind
	lexeme string
}

// Zero is the operand a fresh or cleared machine shows.
var Zero = Number("0")

// ErrorValue stands for NaN and negative infinity results.
var ErrorValue = Value{kind: KindError}

// InfinityValue stands for positive infinity results.
var InfinityValue = Value{kind: KindInfinity}

// Number wraps a decimal lexeme such as "12", "0." or "-3.5".
func Number(lexeme string) Value {
	return Value{kind: KindNumber, lexeme: lexeme}
}

// FromResult converts a binary-operation result. Positive infinity is kept
// as InfinityValue; every other non-finite result is ErrorValue.
func FromResult(f float64) Value {
	switch {
	case math.IsInf(f, 1):
		return InfinityValue
	case math.IsNaN(f) || math.IsInf(f, -1):
		return ErrorValue
	}
	return Number(numfmt.JSString(f))
}

// FromFunction converts a unary-function result. Any non-finite result is
// ErrorValue.
func FromFunction(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrorValue
	}
	return Number(numfmt.JSString(f))
}

// ParseValue reverses String.
func ParseValue(s string) Value {
	switch s {
	case ErrorText:
		return ErrorValue
	case InfinityText:
		return InfinityValue
	}
	return Number(s)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSentinel reports whether v is Error or Infinity.
func (v Value) IsSentinel() bool {
	return v.kind != KindNumber
}

// Float parses the operand. Error parses as NaN and Infinity as +Inf.
func (v Value) Float() float64 {
	switch v.kind {
	case KindError:
		return math.NaN()
	case KindInfinity:
		return math.Inf(1)
	}
	lexeme := v.lexeme
	if lexeme == "" {
		return 0
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out-of-range lexemes parse to ±Inf, like the browser does.
	return f
}

// String returns the legacy display string: the lexeme or a sentinel text.
func (v Value) String() string {
	switch v.kind {
	case KindError:
		return ErrorText
	case KindInfinity:
		return InfinityText
	}
	if v.lexeme == "" {
		return "0"
	}
	return v.lexeme
}

func (v Value) hasDecimalPoint() bool {
	return v.kind == KindNumber && strings.Contains(v.lexeme, ".")
}
