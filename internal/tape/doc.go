// Package tape provides the SQLite-backed paper tape of calculator
// sessions.
//
// Each session row records the angle mode it started in; each entry row
// records one applied key together with the screen it produced. The tape
// is append-only and exists for audit and replay. It never restores a
// calculator's memory register.
//
// # Ordering
//
// Entries are numbered by the session's logical clock and every query
// orders by seq, so replays see keys in exactly the recorded order.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package tape
