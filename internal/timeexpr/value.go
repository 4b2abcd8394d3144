package timeexpr

import "time"

// Millisecond scales used by literal evaluation and formatting.
const (
	Second = int64(time.Second / time.Millisecond)
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
)

// Kind tells how a Value's milliseconds are interpreted.
type Kind int

const (
	// Duration is a signed elapsed quantity with no anchor.
	Duration Kind = iota
	// Instant is an absolute epoch timestamp.
	Instant
)

func (k Kind) String() string {
	switch k {
	case Duration:
		return "duration"
	case Instant:
		return "instant"
	default:
		return "unknown"
	}
}

// Value is a tagged time quantity in milliseconds.
type Value struct {
	Kind   Kind
	Millis int64
}

// Operator joins the two operands of an expression.
type Operator int

const (
	Plus Operator = iota
	Minus
	To
)

func (o Operator) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case To:
		return "to"
	default:
		return "?"
	}
}

func operatorFor(t Token) (Operator, bool) {
	switch t.Type {
	case TokenPlus:
		return Plus, true
	case TokenMinus:
		return Minus, true
	case TokenTo:
		return To, true
	}
	return 0, false
}

// Shape is the operation shape derived from (kind, operator, kind).
type Shape int

const (
	DurationAndDuration Shape = iota
	InstantAndDuration
	InstantToInstant
)

func (s Shape) String() string {
	switch s {
	case DurationAndDuration:
		return "duration_and_duration"
	case InstantAndDuration:
		return "instant_and_duration"
	case InstantToInstant:
		return "instant_to_instant"
	default:
		return "unknown"
	}
}

// classify returns the shape for an operand/operator triple.
func classify(left Kind, op Operator, right Kind) (Shape, bool) {
	switch {
	case left == Duration && right == Duration && op != To:
		return DurationAndDuration, true
	case left == Instant && right == Instant && op == To:
		return InstantToInstant, true
	case left == Instant && right == Duration && op != To:
		return InstantAndDuration, true
	}
	return 0, false
}

// Expression is a classified (value, operator, value) triple.
type Expression struct {
	Left  Value
	Op    Operator
	Right Value
	Shape Shape
}
