package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/keymap"
	"github.com/roach88/tally/internal/session"
)

// Run executes a scenario on a fresh session and returns the result.
//
// An error is returned only when the scenario cannot run at all, e.g. a
// key the decoder does not know. Expectation failures are reported in
// Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with session logging sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	angle := calc.Degrees
	if scenario.AngleMode != "" {
		mode, err := calc.ParseAngleMode(scenario.AngleMode)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		angle = mode
	}

	decoder, err := keymap.New(scenario.Keys)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: keys: %w", scenario.Name, err)
	}

	s := session.New(
		session.WithAngle(angle),
		session.WithDecoder(decoder),
		session.WithLogger(logger.With("scenario", scenario.Name)),
	)

	ctx := context.Background()
	result := NewResult(angle)

	for i, step := range scenario.Steps {
		var last session.Step
		for _, key := range step.Press {
			applied, err := s.Press(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: steps[%d]: %w", scenario.Name, i, err)
			}
			result.AddTrace(TraceEvent{
				Seq:     applied.Seq,
				Key:     applied.Key,
				Token:   applied.Token,
				Display: applied.Screen.Result,
				History: applied.Screen.History,
				Tier:    applied.Screen.Tier.String(),
			})
			last = applied
		}

		if step.Expect != nil {
			where := fmt.Sprintf("steps[%d]", i)
			for _, failure := range checkExpect(where, step.Expect, last.Screen, last.State) {
				result.AddError(failure.Error())
			}
		}
	}

	result.Final = s.State()
	if scenario.Final != nil {
		for _, failure := range checkExpect("final", scenario.Final, s.Screen(), result.Final) {
			result.AddError(failure.Error())
		}
	}

	return result, nil
}
