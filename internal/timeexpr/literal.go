package timeexpr

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Parser validates and evaluates literals for one mode and one reference
// time. It is a plain value: build a new one per evaluation so the mode
// and "now" stay consistent for the whole expression.
type Parser struct {
	Use24Hour bool
	// Now is the reference instant. Its date and location anchor every
	// clock-time literal.
	Now time.Time
}

// IsValidInstantLiteral reports whether lit is a clock-time literal
// ("5:00pm", "12am", "17:30", "now") under the parser's mode.
func (p Parser) IsValidInstantLiteral(lit string) bool {
	if lit == "now" {
		return true
	}
	if strings.Contains(lit, "hr") || strings.Contains(lit, "min") {
		return false
	}
	_, _, ok := p.clock(lit)
	return ok
}

// ParseInstantLiteral returns the epoch milliseconds for lit on the
// parser's current day, or false if lit is not a valid clock-time literal.
func (p Parser) ParseInstantLiteral(lit string) (int64, bool) {
	if lit == "now" {
		return p.Now.UnixMilli(), true
	}
	hour, minute, ok := p.clock(lit)
	if !ok {
		return 0, false
	}
	t := time.Date(p.Now.Year(), p.Now.Month(), p.Now.Day(), hour, minute, 0, 0, p.Now.Location())
	return t.UnixMilli(), true
}

// clock validates a non-"now" clock literal and returns its hour of day
// (0-23) and minute.
func (p Parser) clock(lit string) (hour, minute int, ok bool) {
	body := lit
	meridiem := ""
	if p.Use24Hour {
		if strings.Contains(lit, "am") || strings.Contains(lit, "pm") {
			return 0, 0, false
		}
	} else {
		if !strings.HasSuffix(lit, "am") && !strings.HasSuffix(lit, "pm") {
			return 0, 0, false
		}
		meridiem = lit[len(lit)-2:]
		body = lit[:len(lit)-2]
	}

	parts := strings.Split(body, ":")
	if len(parts) > 2 {
		return 0, 0, false
	}

	hourStr := parts[0]
	if len(hourStr) < 1 || len(hourStr) > 2 || !isDigits(hourStr) {
		return 0, 0, false
	}
	if len(parts) == 2 {
		if len(parts[1]) != 2 || !isDigits(parts[1]) {
			return 0, 0, false
		}
		minute, _ = strconv.Atoi(parts[1])
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	if p.Use24Hour {
		if hour > 23 {
			return 0, 0, false
		}
	} else if hour < 1 || hour > 12 {
		return 0, 0, false
	}
	if minute > 59 {
		return 0, 0, false
	}

	switch {
	case meridiem == "am" && hour == 12:
		hour = 0
	case meridiem == "pm" && hour < 12:
		hour += 12
	}
	return hour, minute, true
}

type durationPart struct {
	digits string
	unit   TokenType // TokenHr or TokenMin
}

// IsValidDurationLiteral reports whether lit is a well-formed duration
// literal: "5hr", "30min" or "5hr30min". Components may not carry a
// leading zero ("05hr"), must each end in a unit, and hours come first.
// Durations longer than an int64 count of milliseconds are rejected.
func IsValidDurationLiteral(lit string) bool {
	if strings.Contains(lit, ":") {
		return false
	}

	var (
		parts  []durationPart
		digits strings.Builder
	)
	for i := 0; i < len(lit); {
		c := lit[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			i++
		case strings.HasPrefix(lit[i:], "hr"):
			parts = append(parts, durationPart{digits: digits.String(), unit: TokenHr})
			digits.Reset()
			i += len("hr")
		case strings.HasPrefix(lit[i:], "min"):
			parts = append(parts, durationPart{digits: digits.String(), unit: TokenMin})
			digits.Reset()
			i += len("min")
		default:
			return false
		}
	}

	if digits.Len() > 0 || len(parts) == 0 || len(parts) > 2 {
		return false
	}
	// The total must fit in int64 milliseconds.
	var ms int64
	for _, part := range parts {
		n, err := strconv.ParseInt(part.digits, 10, 64)
		if err != nil {
			return false
		}
		if len(part.digits) > 1 && part.digits[0] == '0' {
			return false
		}
		unit := Hour
		if part.unit == TokenMin {
			unit = Minute
		}
		if n > (math.MaxInt64-ms)/unit {
			return false
		}
		ms += n * unit
	}
	if len(parts) == 2 && (parts[0].unit != TokenHr || parts[1].unit != TokenMin) {
		return false
	}
	return true
}

// ParseDurationLiteral returns the milliseconds in a duration literal.
// It is deliberately lenient: unit order does not matter, leading zeros
// are accepted and a missing component counts as zero. Callers that need
// strictness or overflow protection check IsValidDurationLiteral first.
func ParseDurationLiteral(lit string) int64 {
	var hours, minutes, value string
	for _, r := range lit {
		switch {
		case r >= '0' && r <= '9':
			value += string(r)
		case r == 'h':
			hours, value = value, ""
		case r == 'm':
			minutes, value = value, ""
		}
	}

	var ms int64
	if n, err := strconv.ParseInt(hours, 10, 64); err == nil {
		ms += n * Hour
	}
	if n, err := strconv.ParseInt(minutes, 10, 64); err == nil {
		ms += n * Minute
	}
	return ms
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
