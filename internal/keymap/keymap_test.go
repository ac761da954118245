package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tally/internal/calc"
)

func TestDecodeKeyboardShortcuts(t *testing.T) {
	d := Default()

	tests := []struct {
		key  string
		want calc.Action
	}{
		{"7", calc.Digit('7')},
		{".", calc.Decimal()},
		{"+", calc.OperatorAction(calc.OpAdd)},
		{"-", calc.OperatorAction(calc.OpSubtract)},
		{"*", calc.OperatorAction(calc.OpMultiply)},
		{"/", calc.OperatorAction(calc.OpDivide)},
		{"^", calc.OperatorAction(calc.OpPower)},
		{"Enter", calc.Evaluate()},
		{"=", calc.Evaluate()},
		{"Escape", calc.Clear()},
		{"%", calc.Percent()},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := d.Decode(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeButtonNames(t *testing.T) {
	d := Default()

	got, err := d.Decode("10power")
	require.NoError(t, err)
	assert.Equal(t, calc.FunctionAction(calc.FnTenPower), got)

	got, err = d.Decode("mplus")
	require.NoError(t, err)
	assert.Equal(t, calc.FunctionAction(calc.FnMemPlus), got)

	got, err = d.Decode("multiply")
	require.NoError(t, err)
	assert.Equal(t, calc.OperatorAction(calc.OpMultiply), got)

	// The button name "power" is the function-panel alias.
	got, err = d.Decode("power")
	require.NoError(t, err)
	assert.Equal(t, calc.FunctionAction(calc.FnPower), got)
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := Default().Decode("F5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKey)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "F5", decodeErr.Key)
	assert.Contains(t, err.Error(), `"F5"`)
}

// Every action's canonical token decodes to an action with the same effect.
func TestCanonicalTokensRoundTrip(t *testing.T) {
	d := Default()
	for _, b := range d.Bindings() {
		action, err := d.Decode(b.Token)
		require.NoError(t, err, "token %q of key %q", b.Token, b.Key)

		if action.Kind == calc.ActFunction && action.Function == calc.FnPower {
			continue
		}
		assert.Equal(t, b.Token, action.String(), "key %q", b.Key)
	}
}

func TestNewWithBindings(t *testing.T) {
	d, err := New(map[string]string{
		"x":         "multiply",
		"Backspace": "clear",
		"Enter":     "percent",
	})
	require.NoError(t, err)

	got, err := d.Decode("x")
	require.NoError(t, err)
	assert.Equal(t, calc.OperatorAction(calc.OpMultiply), got)

	got, err = d.Decode("Backspace")
	require.NoError(t, err)
	assert.Equal(t, calc.Clear(), got)

	got, err = d.Decode("Enter")
	require.NoError(t, err)
	assert.Equal(t, calc.Percent(), got, "bindings override defaults")

	// Defaults are not mutated by a custom decoder.
	got, err = Default().Decode("Enter")
	require.NoError(t, err)
	assert.Equal(t, calc.Evaluate(), got)
}

func TestNewRejectsUnknownToken(t *testing.T) {
	_, err := New(map[string]string{"q": "sqrt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown token "sqrt"`)

	_, err = New(map[string]string{"": "add"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")
}

func TestBindingsSorted(t *testing.T) {
	bindings := Default().Bindings()
	require.NotEmpty(t, bindings)
	for i := 1; i < len(bindings); i++ {
		assert.Less(t, bindings[i-1].Key, bindings[i].Key)
	}
}

func TestIsToken(t *testing.T) {
	assert.True(t, IsToken("sin"))
	assert.True(t, IsToken("Enter"))
	assert.False(t, IsToken("sqrt"))
}
