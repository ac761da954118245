// Package calc implements the calculator's input state machine.
//
// A Machine holds one operand being entered, at most one pending binary
// operation, a memory register and an angle mode. Every user action is a
// synchronous transition on that record; nothing blocks and nothing runs
// concurrently, so a Machine needs no locking as long as a single caller
// owns it.
//
// # Phases
//
// The machine's behavior depends on whether a binary operation is pending
// and whether the next digit starts a fresh operand. Phase names the five
// reachable combinations:
//
//   - PhaseEntry: no pending operation; digits extend the current operand.
//   - PhaseResult: no pending operation; the next digit replaces the operand.
//   - PhaseError: like PhaseResult, but the operand is a sentinel.
//   - PhaseOperand: an operation is pending and waits for its right operand.
//   - PhaseRight: an operation is pending and the right operand is being typed.
//
// # Sentinels
//
// Arithmetic never returns a Go error. A result that cannot be shown as a
// finite number becomes the Error or Infinity sentinel value, which the
// display prints verbatim and the next digit overwrites.
package calc
