package tape

import (
	"context"
	"fmt"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/session"
)

// Recorder appends session steps to one tape session. It implements
// session.Recorder.
type Recorder struct {
	store   *Store
	session Session
}

// NewRecorder creates a tape session and returns a recorder bound to it.
func NewRecorder(ctx context.Context, st *Store, ids SessionIDGenerator, angle calc.AngleMode) (*Recorder, error) {
	sess := Session{ID: ids.Generate(), AngleMode: angle}
	if err := st.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("new recorder: %w", err)
	}
	return &Recorder{store: st, session: sess}, nil
}

// SessionID is the ID of the tape session being written.
func (r *Recorder) SessionID() string {
	return r.session.ID
}

// Record appends one step.
func (r *Recorder) Record(ctx context.Context, step session.Step) error {
	return r.store.AppendEntry(ctx, Entry{
		SessionID: r.session.ID,
		Seq:       step.Seq,
		Key:       step.Key,
		Token:     step.Token,
		Display:   step.Screen.Result,
		History:   step.Screen.History,
	})
}

var _ session.Recorder = (*Recorder)(nil)

func parseAngle(s string) calc.AngleMode {
	mode, err := calc.ParseAngleMode(s)
	if err != nil {
		return calc.Degrees
	}
	return mode
}
