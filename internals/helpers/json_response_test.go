// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 10)
	if p.TotalPages != 5 {
		t.Fatalf("TotalPages = %d, want 5", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 5 should have next and prev, got next=%v prev=%v", p.HasNext, p.HasPrev)
	}

	last := BuildPaginationFromPage(45, 5, 10)
	if last.HasNext {
		t.Fatal("last page should not have next")
	}

	empty := BuildPaginationFromPage(0, 1, 10)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result pagination wrong: %+v", empty)
	}
}

func TestBuildPaginationFromPageDefaults(t *testing.T) {
	p := BuildPaginationFromPage(7, 0, 0)
	if p.Page != 1 || p.PerPage != 20 {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:          "BAD_REQUEST",
		fiber.StatusUnauthorized:        "UNAUTHORIZED",
		fiber.StatusForbidden:           "FORBIDDEN",
		fiber.StatusNotFound:            "NOT_FOUND",
		fiber.StatusConflict:            "CONFLICT",
		fiber.StatusUnprocessableEntity: "VALIDATION_ERROR",
		fiber.StatusInternalServerError: "INTERNAL_ERROR",
		fiber.StatusBadGateway:          "INTERNAL_ERROR",
		fiber.StatusTeapot:              "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", status, got, want)
		}
	}
}
