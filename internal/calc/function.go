package calc

import (
	"fmt"
	"math"
)

// Function is a scientific-panel action.
type Function string

const (
	FnSin       Function = "sin"
	FnCos       Function = "cos"
	FnTan       Function = "tan"
	FnLog       Function = "log"
	FnLn        Function = "ln"
	FnSquare    Function = "sqr"
	FnCube      Function = "cube"
	FnExp       Function = "exp"
	FnTenPower  Function = "10power"
	FnFactorial Function = "factorial"
	FnPi        Function = "pi"
	FnPower     Function = "power"
	FnRad       Function = "rad"
	FnDeg       Function = "deg"
	FnMemClear  Function = "mc"
	FnMemPlus   Function = "mplus"
	FnMemMinus  Function = "mminus"
	FnMemRecall Function = "mr"
)

// Functions lists every scientific-panel action.
var Functions = []Function{
	FnSin, FnCos, FnTan, FnLog, FnLn, FnSquare, FnCube, FnExp, FnTenPower,
	FnFactorial, FnPi, FnPower, FnRad, FnDeg,
	FnMemClear, FnMemPlus, FnMemMinus, FnMemRecall,
}

// ParseFunction maps a function name to its Function.
func ParseFunction(name string) (Function, error) {
	for _, fn := range Functions {
		if string(fn) == name {
			return fn, nil
		}
	}
	return "", fmt.Errorf("unknown function %q", name)
}

// AngleMode selects how trigonometric functions read their argument.
type AngleMode string

const (
	Degrees AngleMode = "deg"
	Radians AngleMode = "rad"
)

// ParseAngleMode maps "deg" or "rad" to an AngleMode.
func ParseAngleMode(s string) (AngleMode, error) {
	switch AngleMode(s) {
	case Degrees, Radians:
		return AngleMode(s), nil
	}
	return "", fmt.Errorf("unknown angle mode %q", s)
}

// unary evaluates the pure unary functions. ok is false for functions that
// do not compute a value from their argument.
func unary(fn Function, val float64, angle AngleMode) (result float64, ok bool) {
	switch fn {
	case FnSin:
		return math.Sin(toRadians(val, angle)), true
	case FnCos:
		return math.Cos(toRadians(val, angle)), true
	case FnTan:
		return math.Tan(toRadians(val, angle)), true
	case FnLog:
		return math.Log10(val), true
	case FnLn:
		return math.Log(val), true
	case FnSquare:
		return math.Pow(val, 2), true
	case FnCube:
		return math.Pow(val, 3), true
	case FnExp:
		return math.Exp(val), true
	case FnTenPower:
		return math.Pow(10, val), true
	case FnFactorial:
		return Factorial(val), true
	case FnPi:
		return math.Pi, true
	}
	return 0, false
}

func toRadians(val float64, angle AngleMode) float64 {
	if angle == Degrees {
		return val * (math.Pi / 180)
	}
	return val
}

// Factorial returns val! for non-negative integers and NaN otherwise.
// Results past 170! overflow to +Inf.
func Factorial(val float64) float64 {
	if val < 0 || math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) {
		return math.NaN()
	}
	result := 1.0
	for i := 2.0; i <= val; i++ {
		result *= i
		if math.IsInf(result, 1) {
			break
		}
	}
	return result
}
