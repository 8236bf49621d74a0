// file: internals/helpers/daywindow_test.go
package helper

import (
	"testing"
	"time"
)

func TestDayOfTruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 02:30 on the 5th in UTC+9 is 17:30 on the 4th in UTC
	in := time.Date(2026, 3, 5, 2, 30, 0, 0, loc)
	got := DayOf(in)
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DayOf(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("DayOf returned non-UTC location %v", got.Location())
	}
}

func TestDayWindowHalfOpen(t *testing.T) {
	in := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	start, end := DayWindow(in)
	if !start.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window start = %v", start)
	}
	if !end.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window end = %v", end)
	}
	if !in.Before(end) || in.Before(start) {
		t.Fatalf("input %v not inside [%v, %v)", in, start, end)
	}
}

func TestDayWindowBoundary(t *testing.T) {
	// midnight belongs to its own day, not the previous one
	midnight := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	start, end := DayWindow(midnight)
	if !start.Equal(midnight) {
		t.Fatalf("midnight should open its own window, got %v", start)
	}
	if !end.Equal(midnight.AddDate(0, 0, 1)) {
		t.Fatalf("window end = %v", end)
	}
}

func TestParseDateYYYYMMDD(t *testing.T) {
	got, ok := ParseDateYYYYMMDD(" 2026-02-07 ")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if !got.Equal(time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %v", got)
	}

	if _, ok := ParseDateYYYYMMDD("07/02/2026"); ok {
		t.Fatal("expected parse to fail on non ISO input")
	}
	if _, ok := ParseDateYYYYMMDD(""); ok {
		t.Fatal("expected parse to fail on empty input")
	}
}
