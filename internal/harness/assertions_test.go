package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/display"
)

func ptr[T any](v T) *T { return &v }

func TestCheckExpect_AllFieldsMatch(t *testing.T) {
	m := calc.New()
	m.Digit('1')
	m.Digit('2')
	m.Operator(calc.OpAdd)
	state := m.State()
	screen := display.Render(state)

	e := &Expect{
		Display:  ptr("12"),
		History:  ptr("12 +"),
		Tier:     ptr("default"),
		Current:  ptr("12"),
		Previous: ptr("12"),
		Operator: ptr("add"),
		Awaiting: ptr(true),
		Memory:   ptr(0.0),
		Angle:    ptr("deg"),
		Phase:    ptr("operand"),
	}
	assert.Empty(t, checkExpect("steps[0]", e, screen, state))
}

func TestCheckExpect_ReportsEachMismatch(t *testing.T) {
	state := calc.New().State()
	screen := display.Render(state)

	e := &Expect{
		Display:  ptr("1"),
		Awaiting: ptr(true),
		Memory:   ptr(2.5),
	}
	errs := checkExpect("final", e, screen, state)
	require.Len(t, errs, 3)

	var fields []string
	for _, err := range errs {
		var ae *AssertionError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "final", ae.Where)
		fields = append(fields, ae.Field)
	}
	assert.Equal(t, []string{"display", "awaiting", "memory"}, fields)
}

func TestCheckExpect_NaNMemory(t *testing.T) {
	m := calc.New()
	m.Digit('0')
	m.Operator(calc.OpDivide)
	m.Digit('0')
	m.Evaluate()
	m.Function(calc.FnMemPlus)
	state := m.State()
	require.True(t, math.IsNaN(state.Memory))

	e := &Expect{Memory: ptr(math.NaN())}
	assert.Empty(t, checkExpect("final", e, display.Render(state), state))

	e = &Expect{Memory: ptr(0.0)}
	assert.Len(t, checkExpect("final", e, display.Render(state), state), 1)
}

func TestSameFloat(t *testing.T) {
	assert.True(t, sameFloat(1.5, 1.5))
	assert.True(t, sameFloat(math.NaN(), math.NaN()))
	assert.False(t, sameFloat(math.NaN(), 0))
	assert.False(t, sameFloat(0, math.NaN()))
	assert.False(t, sameFloat(1, 2))
}

func TestAssertionError_ErrorFormat(t *testing.T) {
	err := &AssertionError{
		Where:    "steps[3]",
		Field:    "display",
		Expected: `"20"`,
		Actual:   `"5"`,
		State: calc.State{
			Current:  "5",
			Previous: "5",
			Operator: calc.OpMultiply,
			Awaiting: true,
			Angle:    calc.Degrees,
			Phase:    calc.PhaseOperand,
		},
	}

	errorStr := err.Error()
	assert.Contains(t, errorStr, "Assertion failed: steps[3] display")
	assert.Contains(t, errorStr, `Expected: "20"`)
	assert.Contains(t, errorStr, `Actual: "5"`)
	assert.Contains(t, errorStr, "State:")
	assert.Contains(t, errorStr, `Current: (string) (len=1) "5"`)
	assert.Contains(t, errorStr, `Operator: (calc.Operator) (len=8) "multiply"`)
}
