package tape

import "github.com/roach88/tally/internal/calc"

// Session is one recorded calculator session.
type Session struct {
	ID        string         `json:"id"`
	AngleMode calc.AngleMode `json:"angle_mode"`
}

// Entry is one applied key and the screen it produced.
type Entry struct {
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
	Key       string `json:"key"`
	Token     string `json:"token"`
	Display   string `json:"display"`
	History   string `json:"history"`
}
