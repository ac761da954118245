package harness

import (
	"github.com/roach88/tally/internal/calc"
)

// TraceEvent is one applied key as the renderer saw it.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Key     string `json:"key"`
	Token   string `json:"token"`
	Display string `json:"display"`
	History string `json:"history,omitempty"`
	Tier    string `json:"tier"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect block matched.
	Pass bool `json:"pass"`

	// AngleMode is the mode the scenario started in.
	AngleMode calc.AngleMode `json:"angle_mode"`

	// Trace contains every applied key in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the machine state after the last step.
	Final calc.State `json:"final"`
}

// NewResult creates a new passing result.
func NewResult(angle calc.AngleMode) *Result {
	return &Result{
		Pass:      true,
		AngleMode: angle,
		Trace:     []TraceEvent{},
		Errors:    []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an applied key to the trace.
func (r *Result) AddTrace(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
}
