package timeexpr

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// InvalidInput is the text returned by Evaluate for any failure.
const InvalidInput = "Invalid Input"

// ErrInvalidInput is wrapped by every error returned from Compute.
var ErrInvalidInput = errors.New("invalid input")

// Clock returns the current time.
type Clock func() time.Time

// Calculator is the entry point for shells. It owns the 12/24-hour mode,
// the clock and the display location. It is safe for concurrent use; each
// evaluation reads the mode and the clock exactly once.
type Calculator struct {
	use24Hour atomic.Bool
	clock     Clock
	loc       *time.Location
}

// Option configures a Calculator.
type Option func(*Calculator)

// With24Hour sets the initial mode.
func With24Hour(enable bool) Option {
	return func(c *Calculator) { c.use24Hour.Store(enable) }
}

// WithClock replaces time.Now.
func WithClock(clock Clock) Option {
	return func(c *Calculator) { c.clock = clock }
}

// WithLocation sets the zone used to anchor "today" and render instants.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) { c.loc = loc }
}

// New creates a 12-hour calculator using the local clock unless
// configured otherwise.
func New(opts ...Option) *Calculator {
	c := &Calculator{clock: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	return c
}

// SetMode switches between 24-hour (true) and 12-hour (false) clocks.
func (c *Calculator) SetMode(enable24Hour bool) {
	c.use24Hour.Store(enable24Hour)
}

// Uses24Hour reports the current mode.
func (c *Calculator) Uses24Hour() bool {
	return c.use24Hour.Load()
}

// Location returns the zone instants are anchored to.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Result is a successful evaluation.
type Result struct {
	Expression Expression
	Value      Value
	Text       string
}

// Evaluate runs the whole pipeline over a token stream and returns the
// formatted result or InvalidInput.
func (c *Calculator) Evaluate(tokens []string) string {
	res, err := c.Compute(tokens)
	if err != nil {
		return InvalidInput
	}
	return res.Text
}

// Compute is Evaluate with the typed result and a reason on failure.
func (c *Calculator) Compute(tokens []string) (Result, error) {
	p, f := c.Snapshot()

	terms, ok := SplitTerms(TokenizeStrings(tokens))
	if !ok {
		return Result{}, fmt.Errorf("%w: expected <time> <+|-|to> <time>", ErrInvalidInput)
	}
	if _, ok := p.LiteralKind(terms.Left); !ok {
		return Result{}, fmt.Errorf("%w: unrecognized literal %q", ErrInvalidInput, terms.Left)
	}
	if _, ok := p.LiteralKind(terms.Right); !ok {
		return Result{}, fmt.Errorf("%w: unrecognized literal %q", ErrInvalidInput, terms.Right)
	}
	expr, ok := p.ParseTerms(terms)
	if !ok {
		return Result{}, fmt.Errorf("%w: cannot apply %q to %s and %s",
			ErrInvalidInput, terms.Op.Value, terms.Left, terms.Right)
	}
	v, ok := Evaluate(expr)
	if !ok {
		return Result{}, fmt.Errorf("%w: cannot evaluate %s", ErrInvalidInput, expr.Shape)
	}
	return Result{Expression: expr, Value: v, Text: f.Format(v)}, nil
}

// Snapshot returns a parser and formatter bound to the current mode and
// a single clock reading.
func (c *Calculator) Snapshot() (Parser, Formatter) {
	use24 := c.use24Hour.Load()
	now := c.clock().In(c.loc)
	return Parser{Use24Hour: use24, Now: now}, Formatter{Use24Hour: use24, Location: c.loc}
}
