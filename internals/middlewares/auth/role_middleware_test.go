// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "academyos_backend/internals/helpers"
)

func newRoleApp(role string, required ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		},
		RequireRoles(required...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireRolesAllows(t *testing.T) {
	app := newRoleApp("teacher", "teacher", "admin")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireRolesForbidsOtherRole(t *testing.T) {
	app := newRoleApp("student", "teacher", "admin")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireRolesUnauthenticated(t *testing.T) {
	app := newRoleApp("", "admin")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireRolesUnknownRoleForbidden(t *testing.T) {
	// a role outside the closed set never passes any gate
	app := newRoleApp("superuser", "teacher", "admin")
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}
