// internals/middlewares/auth/role_middleware.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helper "academyos_backend/internals/helpers"
)

// RequireRoles gates a route on the closed role set. Must run after
// AuthMiddleware so user_role is present in Locals.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Role '%s' is not authorized to access this route", role))
		}
		return c.Next()
	}
}
