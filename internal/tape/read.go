package tape

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID is not on the tape.
var ErrSessionNotFound = errors.New("session not found")

// GetSession reads one session row.
func (s *Store) GetSession(ctx context.Context, id string) (Session, error) {
	var sess Session
	var angle string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, angle_mode
		FROM sessions
		WHERE id = ?
	`, id).Scan(&sess.ID, &angle)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("get session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	sess.AngleMode = parseAngle(angle)
	return sess, nil
}

// ListSessions returns all sessions ordered by id.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, angle_mode
		FROM sessions
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var angle string
		if err := rows.Scan(&sess.ID, &angle); err != nil {
			return nil, fmt.Errorf("list sessions: scan: %w", err)
		}
		sess.AngleMode = parseAngle(angle)
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ReadEntries returns a session's entries in seq order.
func (s *Store) ReadEntries(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, key, token, display, history
		FROM entries
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SessionID, &e.Seq, &e.Key, &e.Token, &e.Display, &e.History); err != nil {
			return nil, fmt.Errorf("read entries: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}
