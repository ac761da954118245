package harness

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/display"
)

// dumper prints machine state without pointer addresses so failure
// messages are stable across runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// AssertionError is returned when an expectation does not match.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Where    string     // "steps[2]" or "final"
	Field    string     // Expect field name, e.g. "display"
	Expected string     // Human-readable expected value
	Actual   string     // Human-readable actual value
	State    calc.State // Machine state at the check
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s %s\n", e.Where, e.Field)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nState:\n")
	buf.WriteString(dumper.Sdump(e.State))

	return buf.String()
}

// checkExpect compares every non-nil field of e with the screen and state.
func checkExpect(where string, e *Expect, screen display.Screen, state calc.State) []error {
	var errs []error
	fail := func(field, expected, actual string) {
		errs = append(errs, &AssertionError{
			Where:    where,
			Field:    field,
			Expected: expected,
			Actual:   actual,
			State:    state,
		})
	}
	str := func(field string, want *string, got string) {
		if want != nil && *want != got {
			fail(field, strconv.Quote(*want), strconv.Quote(got))
		}
	}

	str("display", e.Display, screen.Result)
	str("history", e.History, screen.History)
	str("tier", e.Tier, screen.Tier.String())
	str("current", e.Current, state.Current)
	str("previous", e.Previous, state.Previous)
	str("operator", e.Operator, string(state.Operator))
	str("angle_mode", e.Angle, string(state.Angle))
	str("phase", e.Phase, state.Phase.String())

	if e.Awaiting != nil && *e.Awaiting != state.Awaiting {
		fail("awaiting", strconv.FormatBool(*e.Awaiting), strconv.FormatBool(state.Awaiting))
	}
	if e.Memory != nil && !sameFloat(*e.Memory, state.Memory) {
		fail("memory", formatFloat(*e.Memory), formatFloat(state.Memory))
	}

	return errs
}

// sameFloat is equality that also treats two NaNs as equal.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
