// file: internals/features/enrollments/controller/enrollment_controller_test.go
package controller

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academyos_backend/internals/features/enrollments/model"
)

func strp(s string) *string { return &s }

func TestResolveInstructorExplicitChoice(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	assigned := []uuid.UUID{a, b}

	got, err := resolveInstructor(strp(a.String()), assigned)
	if err != nil {
		t.Fatalf("resolveInstructor: %v", err)
	}
	if got == nil || *got != a {
		t.Fatalf("got %v, want %s", got, a)
	}
}

func TestResolveInstructorRejectsOutsider(t *testing.T) {
	assigned := []uuid.UUID{uuid.New()}
	outsider := uuid.New().String()

	_, err := resolveInstructor(&outsider, assigned)
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("resolveInstructor = %v, want *fiber.Error", err)
	}
	if fe.Code != fiber.StatusBadRequest || fe.Message != "Instructor is not assigned to this course" {
		t.Fatalf("got %d %q", fe.Code, fe.Message)
	}
}

func TestResolveInstructorRejectsMalformedID(t *testing.T) {
	_, err := resolveInstructor(strp("not-a-uuid"), []uuid.UUID{uuid.New()})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("resolveInstructor = %v, want 400", err)
	}
}

func TestResolveInstructorAutoAssign(t *testing.T) {
	only := uuid.New()

	tests := []struct {
		name     string
		assigned []uuid.UUID
		want     *uuid.UUID
	}{
		{"exactly one gets pinned", []uuid.UUID{only}, &only},
		{"none stays unset", nil, nil},
		{"several stays unset", []uuid.UUID{uuid.New(), uuid.New()}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveInstructor(nil, tt.assigned)
			if err != nil {
				t.Fatalf("resolveInstructor: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("got %v, want %s", got, *tt.want)
			}
		})
	}
}

func TestEnrollmentCounterDelta(t *testing.T) {
	tests := []struct {
		prev, next string
		want       int
	}{
		{model.EnrollmentStatusActive, model.EnrollmentStatusWithdrawn, -1},
		{model.EnrollmentStatusCompleted, model.EnrollmentStatusWithdrawn, -1},
		{model.EnrollmentStatusWithdrawn, model.EnrollmentStatusActive, 1},
		{model.EnrollmentStatusWithdrawn, model.EnrollmentStatusCompleted, 1},
		{model.EnrollmentStatusActive, model.EnrollmentStatusCompleted, 0},
		{model.EnrollmentStatusCompleted, model.EnrollmentStatusActive, 0},
		{model.EnrollmentStatusActive, model.EnrollmentStatusActive, 0},
		{model.EnrollmentStatusWithdrawn, model.EnrollmentStatusWithdrawn, 0},
	}

	for _, tt := range tests {
		if got := enrollmentCounterDelta(tt.prev, tt.next); got != tt.want {
			t.Errorf("enrollmentCounterDelta(%s, %s) = %d, want %d", tt.prev, tt.next, got, tt.want)
		}
	}
}
