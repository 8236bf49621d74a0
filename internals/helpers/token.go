// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocRawToken = "raw_token"
)

// GetRawAccessToken returns the access token from:
// 1) Locals("raw_token") set by the middleware
// 2) Authorization header "Bearer <token>"
// 3) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

// SetRawAccessToken stores the verified token in Locals for reuse.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetUserID reads the authenticated user id placed in Locals by the auth
// middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

// GetUserRole reads the authenticated user's role from Locals.
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}
