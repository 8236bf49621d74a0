// file: internals/helpers/daywindow.go
package helper

import (
	"strings"
	"time"
)

// DayOf truncates t to its UTC calendar day. Every attendance day
// computation goes through here so the unique constraint on
// attendances(attendance_day) and the application pre-check always agree.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayWindow returns the half-open window [startOfDay, nextDay) for t's UTC
// calendar day.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := DayOf(t)
	return start, start.AddDate(0, 0, 1)
}

// ParseDateYYYYMMDD parses "2006-01-02" into UTC midnight.
func ParseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
