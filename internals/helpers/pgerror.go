// file: internals/helpers/pgerror.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// matched structurally so we don't import the driver here
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError translates a storage error into (status, message).
// 23505 unique_violation, 23503 foreign_key_violation. Anything else is a
// 500 with a generic message so driver internals never leak to clients.
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Duplicate record (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
