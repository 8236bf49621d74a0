// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/configs"
	userModel "academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token, checks the account is still
// active, and stores user_id + user_role in Locals for the handlers.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		var user userModel.UserModel
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] user lookup failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is deactivated. Please contact administrator.")
		}

		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRole, user.Role)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	exp, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim malformed")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("id claim missing")
	}
	return uuid.Parse(raw)
}
