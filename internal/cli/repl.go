package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/keymap"
)

// ReplOptions holds flags for the repl command.
type ReplOptions struct {
	*RootOptions
	Tape string
}

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive one calculator from standard input",
		Long: `Read keys from standard input, one line at a time, and print the
screen after each line. A line may hold several keys separated by spaces.
Unknown keys are reported and skipped. "quit" or end of input stops.

Examples:
  tally repl
  echo "1 2 + 3 Enter" | tally repl --format json
  tally repl --tape ./tally.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Tape, "tape", "", "record keys to a SQLite tape")

	return cmd
}

func runRepl(ctx context.Context, opts *ReplOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger := opts.resolved()

	s, err := openSession(ctx, cfg, logger, opts.Tape)
	if err != nil {
		return err
	}
	defer s.Close()

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		for _, key := range strings.Fields(line) {
			if _, err := s.Press(ctx, key); err != nil {
				if !errors.Is(err, keymap.ErrUnknownKey) {
					return WrapExitError(ExitCommandError, "press failed", err)
				}
				if opts.Format == "json" {
					_ = f.Error(CodeUnknownKey, err.Error(), map[string]string{"key": key})
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "unknown key %q\n", key)
				}
			}
		}

		if err := f.Screen(s.Screen(), s.sessionID); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	if s.sessionID != "" && opts.Format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "session %s\n", s.sessionID)
	}
	return nil
}
