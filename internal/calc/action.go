package calc

import "fmt"

// ActionKind enumerates the inputs an input decoder can produce.
type ActionKind uint8

const (
	ActDigit ActionKind = iota
	ActDecimal
	ActOperator
	ActClear
	ActEvaluate
	ActSignFlip
	ActPercent
	ActFunction
)

// Action is one decoded user input. Only the field matching Kind is used.
type Action struct {
	Kind     ActionKind
	Digit    byte
	Operator Operator
	Function Function
}

// Canonical tokens for the argument-free actions.
const (
	TokenDecimal  = "decimal"
	TokenClear    = "clear"
	TokenEvaluate = "equals"
	TokenSignFlip = "sign"
	TokenPercent  = "percent"
)

// Digit returns the action for a digit key. d must be in '0'..'9'.
func Digit(d byte) Action { return Action{Kind: ActDigit, Digit: d} }

func Decimal() Action                   { return Action{Kind: ActDecimal} }
func Clear() Action                     { return Action{Kind: ActClear} }
func Evaluate() Action                  { return Action{Kind: ActEvaluate} }
func SignFlip() Action                  { return Action{Kind: ActSignFlip} }
func Percent() Action                   { return Action{Kind: ActPercent} }
func OperatorAction(op Operator) Action { return Action{Kind: ActOperator, Operator: op} }
func FunctionAction(fn Function) Action { return Action{Kind: ActFunction, Function: fn} }

// String returns the canonical token for a, e.g. "7", "add" or "sin".
func (a Action) String() string {
	switch a.Kind {
	case ActDigit:
		return string(a.Digit)
	case ActDecimal:
		return TokenDecimal
	case ActOperator:
		return string(a.Operator)
	case ActClear:
		return TokenClear
	case ActEvaluate:
		return TokenEvaluate
	case ActSignFlip:
		return TokenSignFlip
	case ActPercent:
		return TokenPercent
	case ActFunction:
		return string(a.Function)
	}
	return fmt.Sprintf("action(%d)", a.Kind)
}
