package timeexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatter renders values for one mode and display location.
type Formatter struct {
	Use24Hour bool
	Location  *time.Location // nil means time.Local
}

// Format renders v as "2hr15min", "-12min", "0", "10:30pm" or "22:30".
func (f Formatter) Format(v Value) string {
	if v.Kind == Instant {
		return f.FormatInstant(v.Millis)
	}
	return FormatDuration(v.Millis)
}

// FormatDuration renders a signed millisecond count as hours and minutes.
// Seconds are truncated; a zero unit is omitted and an all-zero result is "0".
func FormatDuration(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	hours := ms / Hour
	minutes := (ms % Hour) / Minute

	var b strings.Builder
	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10) + "hr")
	}
	if minutes > 0 {
		b.WriteString(strconv.FormatInt(minutes, 10) + "min")
	}
	if b.Len() == 0 {
		return "0"
	}
	return sign + b.String()
}

// FormatInstant renders epoch milliseconds as a clock time.
func (f Formatter) FormatInstant(ms int64) string {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	t := time.UnixMilli(ms).In(loc)
	hour, minute := t.Hour(), t.Minute()

	if f.Use24Hour {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	suffix := "am"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "pm"
	case hour > 12:
		hour -= 12
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}
