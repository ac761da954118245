// Package keymap decodes raw key and button names into calculator actions.
//
// The default table covers the keyboard shortcuts of the browser widget
// ("Enter", "Escape", "/" and friends) plus one canonical token per action
// ("add", "equals", "sin", ...). Extra bindings map a new key onto any
// token already in the table.
package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/roach88/tally/internal/calc"
)

// ErrUnknownKey is returned (wrapped in a *DecodeError) for keys with no
// binding.
var ErrUnknownKey = errors.New("unknown key")

// DecodeError reports the key that could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Binding pairs a key with the canonical token it produces.
type Binding struct {
	Key   string `json:"key"`
	Token string `json:"token"`
}

// Decoder maps keys to actions. It is immutable after construction.
type Decoder struct {
	table map[string]calc.Action
}

// defaults is the built-in key table.
var defaults = buildDefaults()

func buildDefaults() map[string]calc.Action {
	table := make(map[string]calc.Action)

	for d := byte('0'); d <= '9'; d++ {
		table[string(d)] = calc.Digit(d)
	}
	for _, op := range calc.Operators {
		table[string(op)] = calc.OperatorAction(op)
	}
	// "power" is claimed by the function alias below.
	for _, fn := range calc.Functions {
		table[string(fn)] = calc.FunctionAction(fn)
	}

	table[calc.TokenDecimal] = calc.Decimal()
	table[calc.TokenClear] = calc.Clear()
	table[calc.TokenEvaluate] = calc.Evaluate()
	table[calc.TokenSignFlip] = calc.SignFlip()
	table[calc.TokenPercent] = calc.Percent()

	// Keyboard shortcuts.
	table["."] = calc.Decimal()
	table["+"] = calc.OperatorAction(calc.OpAdd)
	table["-"] = calc.OperatorAction(calc.OpSubtract)
	table["*"] = calc.OperatorAction(calc.OpMultiply)
	table["/"] = calc.OperatorAction(calc.OpDivide)
	table["^"] = calc.OperatorAction(calc.OpPower)
	table["="] = calc.Evaluate()
	table["Enter"] = calc.Evaluate()
	table["Escape"] = calc.Clear()
	table["%"] = calc.Percent()
	table["±"] = calc.SignFlip()
	table["plusminus"] = calc.SignFlip()

	return table
}

// Default returns a decoder with the built-in table only.
func Default() *Decoder {
	d, _ := New(nil)
	return d
}

// New returns a decoder with extra bindings layered over the defaults.
// Each binding value must name a key of the default table.
func New(bindings map[string]string) (*Decoder, error) {
	table := make(map[string]calc.Action, len(defaults)+len(bindings))
	for k, a := range defaults {
		table[k] = a
	}

	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		token := bindings[key]
		if key == "" {
			return nil, fmt.Errorf("binding for token %q: empty key", token)
		}
		action, ok := defaults[token]
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown token %q", key, token)
		}
		table[key] = action
	}

	return &Decoder{table: table}, nil
}

// Decode returns the action bound to key.
func (d *Decoder) Decode(key string) (calc.Action, error) {
	action, ok := d.table[key]
	if !ok {
		return calc.Action{}, &DecodeError{Key: key, Err: ErrUnknownKey}
	}
	return action, nil
}

// Bindings lists the full table sorted by key.
func (d *Decoder) Bindings() []Binding {
	out := make([]Binding, 0, len(d.table))
	for k, a := range d.table {
		out = append(out, Binding{Key: k, Token: a.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// IsToken reports whether s is a key of the default table.
func IsToken(s string) bool {
	_, ok := defaults[s]
	return ok
}
