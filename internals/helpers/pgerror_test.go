// file: internals/helpers/pgerror_test.go
package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

type fakePGErr struct {
	state string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return "pq: constraint violation " + e.state }

func TestMapPGErrorUniqueViolation(t *testing.T) {
	status, msg := MapPGError(&fakePGErr{state: "23505"})
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if msg == "" {
		t.Fatal("expected a message")
	}
}

func TestMapPGErrorForeignKeyViolation(t *testing.T) {
	status, _ := MapPGError(&fakePGErr{state: "23503"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestMapPGErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create enrollment: %w", &fakePGErr{state: "23505"})
	status, _ := MapPGError(wrapped)
	if status != http.StatusConflict {
		t.Fatalf("wrapped error not unwrapped, status = %d", status)
	}
}

func TestMapPGErrorGenericIsOpaque(t *testing.T) {
	status, msg := MapPGError(errors.New("pq: password authentication failed for user \"app\""))
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if msg != "Internal server error" {
		t.Fatalf("driver detail leaked to client: %q", msg)
	}
}
