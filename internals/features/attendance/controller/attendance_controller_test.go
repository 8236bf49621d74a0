// file: internals/features/attendance/controller/attendance_controller_test.go
package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	userModel "academyos_backend/internals/features/users/user/model"
)

func TestMarkPrecondition(t *testing.T) {
	active := &userModel.UserModel{IsActive: true}
	inactive := &userModel.UserModel{IsActive: false}

	tests := []struct {
		name     string
		student  *userModel.UserModel
		enrolled bool
		wantCode int // 0 = no error
		wantMsg  string
	}{
		{"active and enrolled", active, true, 0, ""},
		{"unknown student", nil, false, fiber.StatusNotFound, "Student not found"},
		{"unknown student with stale enrollment row", nil, true, fiber.StatusNotFound, "Student not found"},
		{"deactivated student still enrolled", inactive, true, fiber.StatusNotFound, "Student not found"},
		{"active but not enrolled", active, false, fiber.StatusNotFound, "Student not found among active enrollments of this course"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := markPrecondition(tt.student, tt.enrolled)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("markPrecondition = %v, want nil", err)
				}
				return
			}
			var fe *fiber.Error
			if !errors.As(err, &fe) {
				t.Fatalf("markPrecondition = %v, want *fiber.Error", err)
			}
			if fe.Code != tt.wantCode || fe.Message != tt.wantMsg {
				t.Fatalf("got %d %q, want %d %q", fe.Code, fe.Message, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

type fakePGErr struct{ state string }

func (e fakePGErr) SQLState() string { return e.state }
func (e fakePGErr) Error() string    { return "SQLSTATE " + e.state }

func TestBulkFailureReason(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
		wantOpaque bool
	}{
		{
			"gate error keeps its message",
			fiber.NewError(fiber.StatusConflict, "Attendance already marked for this student today"),
			"Attendance already marked for this student today", false,
		},
		{
			"unique violation mapped",
			fmt.Errorf("insert: %w", fakePGErr{state: "23505"}),
			"Duplicate record (unique violation).", false,
		},
		{
			"fk violation mapped",
			fakePGErr{state: "23503"},
			"Referenced record not found (FK violation).", false,
		},
		{
			"unexpected error stays opaque",
			errors.New("driver: bad connection"),
			"Failed to mark attendance", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, opaque := bulkFailureReason(tt.err)
			if reason != tt.wantReason || opaque != tt.wantOpaque {
				t.Fatalf("got (%q, %v), want (%q, %v)", reason, opaque, tt.wantReason, tt.wantOpaque)
			}
		})
	}
}
