// Package session is the host event dispatcher: it decodes one key at a
// time, applies it to a calculator, renders the screen and optionally hands
// the step to a recorder.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/display"
	"github.com/roach88/tally/internal/keymap"
)

// Step is the outcome of one applied key.
type Step struct {
	Seq    int64
	Key    string
	Token  string
	Screen display.Screen
	State  calc.State
}

// Recorder receives every applied step, e.g. to persist a paper tape.
type Recorder interface {
	Record(ctx context.Context, step Step) error
}

// Session owns one calculator. It is not safe for concurrent use: keys
// must be pressed one at a time, as a UI event loop would deliver them.
type Session struct {
	machine  *calc.Machine
	decoder  *keymap.Decoder
	clock    *Clock
	recorder Recorder
	logger   *slog.Logger
	angle    calc.AngleMode
}

// Option configures a Session.
type Option func(*Session)

// WithDecoder replaces the default key table.
func WithDecoder(d *keymap.Decoder) Option {
	return func(s *Session) {
		s.decoder = d
	}
}

// WithAngle sets the initial angle mode.
func WithAngle(mode calc.AngleMode) Option {
	return func(s *Session) {
		s.angle = mode
	}
}

// WithRecorder records every applied step.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session with a fresh calculator.
func New(opts ...Option) *Session {
	s := &Session{
		decoder: keymap.Default(),
		clock:   NewClock(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		angle:   calc.Degrees,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.machine = calc.NewWithAngle(s.angle)
	return s
}

// Press applies one key. An unknown key leaves the calculator and the
// clock untouched and returns an error wrapping keymap.ErrUnknownKey.
func (s *Session) Press(ctx context.Context, key string) (Step, error) {
	action, err := s.decoder.Decode(key)
	if err != nil {
		s.logger.Debug("key ignored", "key", key, "error", err)
		return Step{}, err
	}

	s.machine.Apply(action)
	state := s.machine.State()
	step := Step{
		Seq:    s.clock.Next(),
		Key:    key,
		Token:  action.String(),
		Screen: display.Render(state),
		State:  state,
	}

	s.logger.Debug("key applied",
		"seq", step.Seq,
		"key", key,
		"token", step.Token,
		"phase", state.Phase,
		"result", step.Screen.Result,
	)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, step); err != nil {
			return step, fmt.Errorf("record step %d: %w", step.Seq, err)
		}
	}
	return step, nil
}

// PressAll applies keys in order and stops at the first error.
func (s *Session) PressAll(ctx context.Context, keys []string) ([]Step, error) {
	steps := make([]Step, 0, len(keys))
	for _, key := range keys {
		step, err := s.Press(ctx, key)
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Screen renders the current state without pressing anything.
func (s *Session) Screen() display.Screen {
	return display.Render(s.machine.State())
}

// State snapshots the calculator.
func (s *Session) State() calc.State {
	return s.machine.State()
}

// AngleMode is the mode the session started in.
func (s *Session) AngleMode() calc.AngleMode {
	return s.angle
}

// Seq is the sequence number of the last applied key.
func (s *Session) Seq() int64 {
	return s.clock.Current()
}
