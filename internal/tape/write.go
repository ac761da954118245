package tape

import (
	"context"
	"fmt"
)

// CreateSession inserts a session row. Re-inserting an existing ID is a
// no-op.
func (s *Store) CreateSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, angle_mode)
		VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sess.ID,
		string(sess.AngleMode),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// AppendEntry inserts one entry. The session must exist. Writing the same
// (session, seq) twice is a no-op.
func (s *Store) AppendEntry(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (session_id, seq, key, token, display, history)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, seq) DO NOTHING
	`,
		e.SessionID,
		e.Seq,
		e.Key,
		e.Token,
		e.Display,
		e.History,
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}
