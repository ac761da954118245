package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/tally/internal/config"
	"github.com/roach88/tally/internal/session"
	"github.com/roach88/tally/internal/tape"
)

// openedSession is a session plus the tape it records to, if any.
type openedSession struct {
	*session.Session
	store     *tape.Store
	sessionID string
}

// Close closes the tape, if one was opened.
func (s *openedSession) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// openSession builds a session from the config. When tapePath (or the
// config's tape) is set, every applied key is recorded there under a new
// UUIDv7 session ID.
func openSession(ctx context.Context, cfg *config.Config, logger *slog.Logger, tapePath string) (*openedSession, error) {
	decoder, err := cfg.Decoder()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid key bindings", err)
	}

	opts := []session.Option{
		session.WithAngle(cfg.AngleMode),
		session.WithDecoder(decoder),
		session.WithLogger(logger),
	}

	if tapePath == "" {
		tapePath = cfg.Tape
	}
	out := &openedSession{}
	if tapePath != "" {
		st, err := tape.Open(tapePath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open tape %s", tapePath), err)
		}
		rec, err := tape.NewRecorder(ctx, st, tape.UUIDv7Generator{}, cfg.AngleMode)
		if err != nil {
			st.Close()
			return nil, WrapExitError(ExitCommandError, "failed to start tape session", err)
		}
		logger.Debug("recording", "tape", tapePath, "session", rec.SessionID())
		opts = append(opts, session.WithRecorder(rec))
		out.store = st
		out.sessionID = rec.SessionID()
	}

	out.Session = session.New(opts...)
	return out, nil
}
