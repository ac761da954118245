package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/display"
	"github.com/roach88/tally/internal/keymap"
	"github.com/roach88/tally/internal/session"
)

// PressOptions holds flags for the press command.
type PressOptions struct {
	*RootOptions
	Trace bool   // print every step, not just the final screen
	Tape  string // record to this SQLite tape
}

// PressStep is one applied key in --trace output.
type PressStep struct {
	Seq    int64      `json:"seq"`
	Key    string     `json:"key"`
	Token  string     `json:"token"`
	Screen ScreenView `json:"screen"`
}

// PressResult is the JSON payload of the press command.
type PressResult struct {
	Screen ScreenView  `json:"screen"`
	Steps  []PressStep `json:"steps,omitempty"`
}

// NewPressCommand creates the press command.
func NewPressCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PressOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "press <key>...",
		Short: "Press keys on a fresh calculator and print the screen",
		Long: `Press keys in order on a fresh calculator and print the final screen.

Keys are keyboard keys ("7", "+", "Enter", "Escape"), button tokens
("add", "sin", "mplus") or extra bindings from the config file.

Exit codes:
  0 - Success
  2 - Unknown key or command error

Examples:
  tally press 1 2 + 3 Enter
  tally press 9 0 sin --trace
  tally press 2 power 1 0 = --tape ./tally.db --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPress(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the screen after every key")
	cmd.Flags().StringVar(&opts.Tape, "tape", "", "record keys to a SQLite tape")

	return cmd
}

func runPress(ctx context.Context, opts *PressOptions, keys []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger := opts.resolved()

	s, err := openSession(ctx, cfg, logger, opts.Tape)
	if err != nil {
		return err
	}
	defer s.Close()

	steps, err := s.PressAll(ctx, keys)
	if err != nil {
		if opts.Format == "json" && errors.Is(err, keymap.ErrUnknownKey) {
			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			_ = f.Error(CodeUnknownKey, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "press failed", err)
	}

	if opts.Format == "json" {
		return outputPressJSON(cmd, s.Screen(), steps, opts.Trace, s.sessionID)
	}

	w := cmd.OutOrStdout()
	if opts.Trace {
		for _, step := range steps {
			fmt.Fprintf(w, "%3d  %-10s %s\n", step.Seq, step.Key, traceLine(step))
		}
		return nil
	}

	f := &OutputFormatter{Format: opts.Format, Writer: w}
	if err := f.Screen(s.Screen(), s.sessionID); err != nil {
		return err
	}
	if s.sessionID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "session %s\n", s.sessionID)
	}
	return nil
}

// traceLine renders a step as "history | result", or the result alone.
func traceLine(step session.Step) string {
	if step.Screen.History == "" {
		return step.Screen.Result
	}
	return step.Screen.History + " | " + step.Screen.Result
}

func outputPressJSON(cmd *cobra.Command, screen display.Screen, steps []session.Step, trace bool, sessionID string) error {
	result := PressResult{Screen: NewScreenView(screen)}
	if trace {
		result.Steps = make([]PressStep, 0, len(steps))
		for _, step := range steps {
			result.Steps = append(result.Steps, PressStep{
				Seq:    step.Seq,
				Key:    step.Key,
				Token:  step.Token,
				Screen: NewScreenView(step.Screen),
			})
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(CLIResponse{
		Status:    "ok",
		Data:      result,
		SessionID: sessionID,
	})
}
