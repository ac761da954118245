package tape

import (
	"context"
	"fmt"

	"github.com/roach88/tally/internal/session"
)

// Mismatch is a step whose replayed screen differs from the recorded one.
type Mismatch struct {
	Seq      int64  `json:"seq"`
	Token    string `json:"token"`
	Recorded string `json:"recorded"`
	Replayed string `json:"replayed"`
}

// ReplayResult compares a recorded session with its re-execution.
type ReplayResult struct {
	SessionID     string     `json:"session_id"`
	Entries       int        `json:"entries"`
	Recorded      string     `json:"recorded_fingerprint"`
	Replayed      string     `json:"replayed_fingerprint"`
	Mismatches    []Mismatch `json:"mismatches,omitempty"`
	Deterministic bool       `json:"deterministic"`
}

// Replay re-executes a recorded session on a fresh calculator, feeding the
// canonical tokens in seq order, and compares every screen with the tape.
func Replay(ctx context.Context, st *Store, sessionID string) (ReplayResult, error) {
	sess, err := st.GetSession(ctx, sessionID)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay: %w", err)
	}

	recorded, err := st.ReadEntries(ctx, sessionID)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("replay: %w", err)
	}

	s := session.New(session.WithAngle(sess.AngleMode))
	replayed := make([]Entry, 0, len(recorded))
	var mismatches []Mismatch

	for _, want := range recorded {
		step, err := s.Press(ctx, want.Token)
		if err != nil {
			return ReplayResult{}, fmt.Errorf("replay seq %d: %w", want.Seq, err)
		}
		got := Entry{
			SessionID: sessionID,
			Seq:       want.Seq,
			Key:       want.Key,
			Token:     step.Token,
			Display:   step.Screen.Result,
			History:   step.Screen.History,
		}
		replayed = append(replayed, got)

		if got.Display != want.Display || got.History != want.History {
			mismatches = append(mismatches, Mismatch{
				Seq:      want.Seq,
				Token:    want.Token,
				Recorded: screenLine(want),
				Replayed: screenLine(got),
			})
		}
	}

	result := ReplayResult{
		SessionID:  sessionID,
		Entries:    len(recorded),
		Recorded:   Fingerprint(recorded),
		Replayed:   Fingerprint(replayed),
		Mismatches: mismatches,
	}
	result.Deterministic = len(mismatches) == 0 && result.Recorded == result.Replayed
	return result, nil
}

func screenLine(e Entry) string {
	if e.History == "" {
		return e.Display
	}
	return e.History + " | " + e.Display
}
