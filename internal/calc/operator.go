package calc

import (
	"fmt"
	"math"
)

// Operator is a binary operation selected with an operator key.
type Operator string

const (
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"
	OpDivide   Operator = "divide"
	OpPower    Operator = "power"
)

// Operators lists every operator in keypad order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// ParseOperator maps an operator name to its Operator.
func ParseOperator(name string) (Operator, error) {
	for _, op := range Operators {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operator %q", name)
}

// Symbol is the glyph shown in the history line.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	case OpPower:
		return "^"
	}
	return string(op)
}

// Apply computes a op b with IEEE 754 semantics; division by zero yields
// an infinity or NaN rather than panicking.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	case OpPower:
		return math.Pow(a, b)
	}
	return math.NaN()
}
