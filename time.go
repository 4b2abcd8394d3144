package main

import (
	"fmt"
	"regexp"
	"time"
)

var clockOnly = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// parseReference parses the --now override into the reference time that
// "now" and "today" resolve to.
// Supports: RFC3339, YYYY-MM-DDTHH:MM (in loc), HH:MM (24-hour, today in loc).
func parseReference(input string, loc *time.Location) (time.Time, error) {
	return parseReferenceFrom(input, time.Now(), loc)
}

// parseReferenceFrom is the testable version that accepts the real current time.
func parseReferenceFrom(input string, now time.Time, loc *time.Location) (time.Time, error) {
	// 1. RFC3339 (most specific -- check first).
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.In(loc), nil
	}

	// 2. Local date and time without offset.
	if t, err := time.ParseInLocation("2006-01-02T15:04", input, loc); err == nil {
		return t, nil
	}

	// 3. HH:MM (24-hour format) on today's date.
	if clockOnly.MatchString(input) {
		t, err := time.Parse("15:04", input)
		if err != nil {
			return time.Time{}, newCLIError(ExitInvalidInput, "invalid_now",
				fmt.Sprintf("Invalid time %q: %s", input, err))
		}
		now = now.In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), 0, 0, loc), nil
	}

	// Error with helpful message.
	return time.Time{}, newCLIError(ExitInvalidInput, "invalid_now",
		fmt.Sprintf("Cannot parse %q. Use HH:MM, YYYY-MM-DDTHH:MM, or RFC3339.", input))
}
