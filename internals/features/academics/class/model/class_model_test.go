// file: internals/features/academics/class/model/class_model_test.go
package model

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 4, 20, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"back to back", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// symmetric
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Fatalf("Overlaps not symmetric for %s", tc.name)
			}
		})
	}
}
