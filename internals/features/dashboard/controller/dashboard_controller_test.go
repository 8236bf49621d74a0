// file: internals/features/dashboard/controller/dashboard_controller_test.go
package controller

import "testing"

func TestAttendanceRate(t *testing.T) {
	cases := []struct {
		name                 string
		present, late, total int64
		want                 float64
	}{
		{"no records defaults to 100", 0, 0, 0, 100},
		{"all present", 10, 0, 10, 100},
		{"late counts as attended", 5, 5, 10, 100},
		{"half", 4, 1, 10, 50},
		{"none attended", 0, 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AttendanceRate(tc.present, tc.late, tc.total); got != tc.want {
				t.Fatalf("AttendanceRate(%d,%d,%d) = %v, want %v", tc.present, tc.late, tc.total, got, tc.want)
			}
		})
	}
}
