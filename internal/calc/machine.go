package calc

// Phase is the machine's position in the input cycle. See the package
// documentation for the meaning of each phase.
type Phase uint8

const (
	PhaseEntry Phase = iota
	PhaseResult
	PhaseError
	PhaseOperand
	PhaseRight
)

func (p Phase) String() string {
	switch p {
	case PhaseEntry:
		return "entry"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	case PhaseOperand:
		return "operand"
	case PhaseRight:
		return "right"
	}
	return "unknown"
}

// Pending is a binary operation waiting for its right operand.
type Pending struct {
	Left Value
	Op   Operator
}

// Machine is the calculator state record. The zero Machine is not ready;
// use New.
type Machine struct {
	current  Value
	pending  *Pending
	awaiting bool
	memory   float64
	angle    AngleMode
}

// New returns a machine showing "0" in degree mode.
func New() *Machine {
	return NewWithAngle(Degrees)
}

// NewWithAngle returns a fresh machine using the given angle mode.
func NewWithAngle(angle AngleMode) *Machine {
	return &Machine{current: Zero, angle: angle}
}

// Phase derives the current phase from the machine's fields.
func (m *Machine) Phase() Phase {
	switch {
	case m.pending != nil && m.awaiting:
		return PhaseOperand
	case m.pending != nil:
		return PhaseRight
	case !m.awaiting:
		return PhaseEntry
	case m.current.IsSentinel():
		return PhaseError
	default:
		return PhaseResult
	}
}

// Current returns the operand on display.
func (m *Machine) Current() Value {
	return m.current
}

// Apply dispatches a decoded action to its transition.
func (m *Machine) Apply(a Action) {
	switch a.Kind {
	case ActDigit:
		m.Digit(a.Digit)
	case ActDecimal:
		m.Decimal()
	case ActOperator:
		m.Operator(a.Operator)
	case ActClear:
		m.Clear()
	case ActEvaluate:
		m.Evaluate()
	case ActSignFlip:
		m.SignFlip()
	case ActPercent:
		m.Percent()
	case ActFunction:
		m.Function(a.Function)
	}
}

// Digit enters one decimal digit. A lone "0" or a sentinel is replaced,
// never extended.
func (m *Machine) Digit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	switch m.Phase() {
	case PhaseResult, PhaseError, PhaseOperand:
		m.current = Number(string(d))
		m.awaiting = false
	case PhaseEntry, PhaseRight:
		if m.current.IsSentinel() || m.current.String() == "0" {
			m.current = Number(string(d))
			return
		}
		m.current = Number(m.current.String() + string(d))
	}
}

// Decimal starts or extends a fraction. At most one point is ever entered.
func (m *Machine) Decimal() {
	switch m.Phase() {
	case PhaseResult, PhaseError, PhaseOperand:
		m.current = Number("0.")
		m.awaiting = false
	case PhaseEntry, PhaseRight:
		// Sign flip and percent can leave a sentinel without awaiting set.
		if m.current.IsSentinel() {
			m.current = Number("0.")
			return
		}
		if !m.current.hasDecimalPoint() {
			m.current = Number(m.current.String() + ".")
		}
	}
}

// Operator selects a binary operation. With a right operand already typed
// the pending operation is evaluated first and its result becomes the new
// left operand; with none typed the pending operator is replaced.
func (m *Machine) Operator(op Operator) {
	switch m.Phase() {
	case PhaseOperand:
		m.pending.Op = op
		return
	case PhaseRight:
		m.Evaluate()
	case PhaseEntry, PhaseResult, PhaseError:
	}
	m.pending = &Pending{Left: m.current, Op: op}
	m.awaiting = true
}

// Evaluate completes the pending operation. Without one it does nothing.
func (m *Machine) Evaluate() {
	switch m.Phase() {
	case PhaseOperand, PhaseRight:
		result := m.pending.Op.Apply(m.pending.Left.Float(), m.current.Float())
		m.current = FromResult(result)
		m.pending = nil
		m.awaiting = true
	case PhaseEntry, PhaseResult, PhaseError:
	}
}

// Clear resets the operands. Memory and angle mode survive.
func (m *Machine) Clear() {
	m.current = Zero
	m.pending = nil
	m.awaiting = false
}

// SignFlip negates the current operand in place.
func (m *Machine) SignFlip() {
	m.current = FromResult(-m.current.Float())
}

// Percent divides the current operand by 100 in place.
func (m *Machine) Percent() {
	m.current = FromResult(m.current.Float() / 100)
}

// Function runs a scientific-panel action.
func (m *Machine) Function(fn Function) {
	val := m.current.Float()

	switch fn {
	case FnRad:
		m.angle = Radians
		return
	case FnDeg:
		m.angle = Degrees
		return
	case FnPower:
		// The x^y function key enters a pending power operation.
		m.Operator(OpPower)
		return
	case FnMemClear:
		m.memory = 0
		return
	case FnMemPlus:
		m.memory += val
		m.awaiting = true
		return
	case FnMemMinus:
		m.memory -= val
		m.awaiting = true
		return
	case FnMemRecall:
		m.current = FromFunction(m.memory)
		m.awaiting = true
		return
	}

	result, ok := unary(fn, val, m.angle)
	if !ok {
		return
	}
	m.current = FromFunction(result)
	m.awaiting = true
}
