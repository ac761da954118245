package session

import "sync/atomic"

// Clock is the monotonic logical clock that stamps each applied key.
//
// Steps are ordered by seq, never by wall time, so a replayed session
// reproduces the exact numbering of the recorded one.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock whose first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next increments the clock and returns the new sequence number.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last issued sequence number.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
