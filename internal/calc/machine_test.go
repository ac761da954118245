package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys drives m with a compact key string: digits, '.', + - * / ^, '=' and
// 'C' for clear.
func keys(m *Machine, seq string) {
	ops := map[byte]Operator{'+': OpAdd, '-': OpSubtract, '*': OpMultiply, '/': OpDivide, '^': OpPower}
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		switch {
		case c >= '0' && c <= '9':
			m.Digit(c)
		case c == '.':
			m.Decimal()
		case c == '=':
			m.Evaluate()
		case c == 'C':
			m.Clear()
		default:
			op, ok := ops[c]
			if !ok {
				panic("unknown key " + string(c))
			}
			m.Operator(op)
		}
	}
}

func TestNewMachineDefaults(t *testing.T) {
	m := New()
	s := m.State()

	assert.Equal(t, "0", s.Current)
	assert.Empty(t, s.Previous)
	assert.False(t, s.Pending())
	assert.False(t, s.Awaiting)
	assert.Equal(t, 0.0, s.Memory)
	assert.Equal(t, Degrees, s.Angle)
	assert.Equal(t, PhaseEntry, m.Phase())
}

func TestDigitEntryConcatenates(t *testing.T) {
	m := New()
	keys(m, "1203")
	assert.Equal(t, "1203", m.Current().String())
}

func TestDigitReplacesLeadingZero(t *testing.T) {
	m := New()
	keys(m, "005")
	assert.Equal(t, "5", m.Current().String())
}

func TestDigitIgnoresNonDigit(t *testing.T) {
	m := New()
	m.Digit('x')
	assert.Equal(t, "0", m.Current().String())
}

func TestDecimalAppendsOnce(t *testing.T) {
	m := New()
	keys(m, "1.2.5.")
	assert.Equal(t, "1.25", m.Current().String())
}

func TestDecimalOnZeroKeepsZero(t *testing.T) {
	m := New()
	keys(m, ".5")
	assert.Equal(t, "0.5", m.Current().String())
}

func TestDecimalAfterOperatorStartsFreshOperand(t *testing.T) {
	m := New()
	keys(m, "7+.")
	s := m.State()
	assert.Equal(t, "0.", s.Current)
	assert.False(t, s.Awaiting)
	assert.Equal(t, PhaseRight, s.Phase)
}

func TestOperatorCapturesLeftOperand(t *testing.T) {
	m := New()
	keys(m, "12+")
	s := m.State()

	assert.Equal(t, "12", s.Previous)
	assert.Equal(t, OpAdd, s.Operator)
	assert.True(t, s.Awaiting)
	assert.Equal(t, "12 +", s.History())
	assert.Equal(t, PhaseOperand, s.Phase)
}

func TestOperatorSubstitution(t *testing.T) {
	m := New()
	keys(m, "9+*")
	s := m.State()

	assert.Equal(t, "9", s.Previous)
	assert.Equal(t, OpMultiply, s.Operator)
	assert.True(t, s.Awaiting)
	assert.Equal(t, "9", s.Current)
}

func TestChainedOperatorUsesResultAsLeftOperand(t *testing.T) {
	m := New()
	keys(m, "2+3*")
	s := m.State()

	assert.Equal(t, "5", s.Current)
	assert.Equal(t, "5", s.Previous)
	assert.Equal(t, OpMultiply, s.Operator)
	assert.Equal(t, "5 ×", s.History())

	keys(m, "4=")
	assert.Equal(t, "20", m.Current().String())
}

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"2+3=", "5"},
		{"2-3=", "-1"},
		{"6*7=", "42"},
		{"1/4=", "0.25"},
		{"2^10=", "1024"},
		{".1+.2=", "0.30000000000000004"},
		{"1/3=", "0.3333333333333333"},
	}
	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			m := New()
			keys(m, tt.seq)
			s := m.State()
			assert.Equal(t, tt.want, s.Current)
			assert.False(t, s.Pending())
			assert.True(t, s.Awaiting)
		})
	}
}

func TestEvaluateWithoutPendingIsNoop(t *testing.T) {
	m := New()
	keys(m, "42")
	before := m.State()
	m.Evaluate()
	assert.Equal(t, before, m.State())
}

func TestEvaluateIsIdempotent(t *testing.T) {
	m := New()
	keys(m, "8-3=")
	first := m.State()
	m.Evaluate()
	assert.Equal(t, first, m.State())
	assert.Equal(t, "5", first.Current)
}

func TestEvaluateRightOperandDefaultsToLeft(t *testing.T) {
	m := New()
	keys(m, "6*=")
	assert.Equal(t, "36", m.Current().String())
}

func TestDivisionByZero(t *testing.T) {
	t.Run("positive numerator", func(t *testing.T) {
		m := New()
		keys(m, "5/0=")
		assert.Equal(t, InfinityText, m.Current().String())
		assert.Equal(t, KindInfinity, m.Current().Kind())
	})

	t.Run("negative numerator", func(t *testing.T) {
		m := New()
		keys(m, "5")
		m.SignFlip()
		keys(m, "/")
		require.Equal(t, "-5", m.State().Previous)
		keys(m, "0=")
		assert.Equal(t, ErrorText, m.Current().String())
		assert.Equal(t, PhaseError, m.Phase())
	})

	t.Run("zero numerator", func(t *testing.T) {
		m := New()
		keys(m, "0/0=")
		assert.Equal(t, ErrorText, m.Current().String())
	})
}

func TestPowerOverflowIsInfinity(t *testing.T) {
	m := New()
	keys(m, "10^400=")
	assert.Equal(t, InfinityText, m.Current().String())
}

func TestDigitOverwritesSentinel(t *testing.T) {
	m := New()
	keys(m, "0/0=")
	require.Equal(t, ErrorText, m.Current().String())

	keys(m, "7")
	assert.Equal(t, "7", m.Current().String())
	assert.Equal(t, PhaseEntry, m.Phase())
}

func TestDigitReplacesSentinelFromSignFlip(t *testing.T) {
	m := New()
	keys(m, strings.Repeat("9", 310))
	m.SignFlip()
	require.Equal(t, ErrorText, m.Current().String())
	require.False(t, m.State().Awaiting)

	keys(m, "5.")
	assert.Equal(t, "5.", m.Current().String())
	assert.False(t, math.IsNaN(m.Current().Float()))
}

func TestDecimalReplacesSentinelFromPercent(t *testing.T) {
	m := New()
	keys(m, strings.Repeat("9", 310))
	m.Percent()
	require.Equal(t, InfinityText, m.Current().String())
	require.False(t, m.State().Awaiting)

	keys(m, ".5")
	assert.Equal(t, "0.5", m.Current().String())
}

func TestSentinelRightOperandIsReplaced(t *testing.T) {
	m := New()
	keys(m, "2+"+strings.Repeat("9", 310))
	m.SignFlip()
	require.Equal(t, ErrorText, m.Current().String())
	require.Equal(t, PhaseRight, m.Phase())

	keys(m, "3=")
	assert.Equal(t, "5", m.Current().String())

	m = New()
	keys(m, "2+"+strings.Repeat("9", 310))
	m.SignFlip()
	keys(m, ".5=")
	assert.Equal(t, "2.5", m.Current().String())
}

func TestInfinityCarriesIntoNextOperation(t *testing.T) {
	m := New()
	keys(m, "5/0=+1=")
	assert.Equal(t, InfinityText, m.Current().String())
}

func TestErrorCarriesIntoNextOperation(t *testing.T) {
	m := New()
	keys(m, "0/0=+1=")
	assert.Equal(t, ErrorText, m.Current().String())
}

func TestClearKeepsMemoryAndAngle(t *testing.T) {
	m := New()
	keys(m, "7")
	m.Function(FnMemPlus)
	m.Function(FnRad)
	keys(m, "3+4")

	m.Clear()
	s := m.State()
	assert.Equal(t, "0", s.Current)
	assert.False(t, s.Pending())
	assert.False(t, s.Awaiting)
	assert.Equal(t, 7.0, s.Memory)
	assert.Equal(t, Radians, s.Angle)
}

func TestSignFlip(t *testing.T) {
	m := New()
	keys(m, "12.5")
	m.SignFlip()
	assert.Equal(t, "-12.5", m.Current().String())
	assert.False(t, m.State().Awaiting)

	// Awaiting is untouched, so typing continues the operand.
	keys(m, "1")
	assert.Equal(t, "-12.51", m.Current().String())

	m.SignFlip()
	assert.Equal(t, "12.51", m.Current().String())
}

func TestSignFlipOfZero(t *testing.T) {
	m := New()
	m.SignFlip()
	assert.Equal(t, "0", m.Current().String())
}

func TestSignFlipOfInfinityIsError(t *testing.T) {
	m := New()
	keys(m, "5/0=")
	m.SignFlip()
	assert.Equal(t, ErrorText, m.Current().String())
}

func TestPercent(t *testing.T) {
	m := New()
	keys(m, "5")
	m.Percent()
	assert.Equal(t, "0.05", m.Current().String())
}

func TestPercentAsRightOperand(t *testing.T) {
	m := New()
	keys(m, "200*5")
	m.Percent()
	keys(m, "=")
	assert.Equal(t, "10", m.Current().String())
}

func TestApplyDispatches(t *testing.T) {
	m := New()
	for _, a := range []Action{
		Digit('3'), Decimal(), Digit('5'),
		OperatorAction(OpMultiply),
		Digit('2'), Evaluate(),
	} {
		m.Apply(a)
	}
	assert.Equal(t, "7", m.Current().String())

	m.Apply(SignFlip())
	assert.Equal(t, "-7", m.Current().String())
	m.Apply(Percent())
	assert.Equal(t, "-0.07", m.Current().String())
	m.Apply(FunctionAction(FnPi))
	assert.Equal(t, "3.141592653589793", m.Current().String())
	m.Apply(Clear())
	assert.Equal(t, "0", m.Current().String())
}

func TestPhaseTransitions(t *testing.T) {
	m := New()
	assert.Equal(t, PhaseEntry, m.Phase())
	keys(m, "4")
	assert.Equal(t, PhaseEntry, m.Phase())
	keys(m, "+")
	assert.Equal(t, PhaseOperand, m.Phase())
	keys(m, "2")
	assert.Equal(t, PhaseRight, m.Phase())
	keys(m, "=")
	assert.Equal(t, PhaseResult, m.Phase())
	keys(m, "/0=")
	assert.Equal(t, InfinityText, m.Current().String())
	assert.Equal(t, PhaseError, m.Phase())
	keys(m, "+")
	assert.Equal(t, PhaseOperand, m.Phase())
	assert.Equal(t, "Infinity +", m.State().History())
	keys(m, "C")
	assert.Equal(t, PhaseEntry, m.Phase())
}

func TestPendingImpliesPrevious(t *testing.T) {
	m := New()
	sequences := []string{"1", "+", "2", "*", "*", "=", "C", "3", "^", "."}
	for _, seq := range sequences {
		keys(m, seq)
		s := m.State()
		assert.Equal(t, s.Operator != "", s.Previous != "", "after %q", seq)
		assert.NotEmpty(t, s.Current)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "entry", PhaseEntry.String())
	assert.Equal(t, "operand", PhaseOperand.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
