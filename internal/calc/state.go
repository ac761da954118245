package calc

// State is a read-only snapshot of a Machine, in the legacy string form the
// renderer and the scenario harness consume.
type State struct {
	Current  string    `json:"current"`
	Previous string    `json:"previous,omitempty"`
	Operator Operator  `json:"operator,omitempty"`
	Awaiting bool      `json:"awaiting"`
	Memory   float64   `json:"-"`
	Angle    AngleMode `json:"angle_mode"`
	Phase    Phase     `json:"-"`
}

// State snapshots the machine.
func (m *Machine) State() State {
	s := State{
		Current:  m.current.String(),
		Awaiting: m.awaiting,
		Memory:   m.memory,
		Angle:    m.angle,
		Phase:    m.Phase(),
	}
	if m.pending != nil {
		s.Previous = m.pending.Left.String()
		s.Operator = m.pending.Op
	}
	return s
}

// Pending reports whether a binary operation waits for its right operand.
func (s State) Pending() bool {
	return s.Operator != ""
}

// History is the line shown above the result: "{previous} {symbol}" while
// an operation is pending, otherwise empty.
func (s State) History() string {
	if !s.Pending() {
		return ""
	}
	return s.Previous + " " + s.Operator.Symbol()
}
