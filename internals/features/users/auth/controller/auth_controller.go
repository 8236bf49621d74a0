// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academyos_backend/internals/configs"
	"academyos_backend/internals/constants"
	userModel "academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   Requests
   ========================= */

type RegisterRequest struct {
	FirstName   string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName    string  `json:"last_name" validate:"required,min=1,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        *string `json:"role" validate:"omitempty,oneof=student teacher admin parent"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func generateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(time.Duration(configs.JWTExpireHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

/* =========================
   POST /api/auth/register
   ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing userModel.UserModel
	err := ctl.DB.WithContext(c.Context()).First(&existing, "email = ?", req.Email).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User already exists with this email")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		log.Println("[ERROR] bcrypt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	role := constants.RoleStudent
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}

	now := time.Now()
	user := userModel.UserModel{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      role,
		Phone:     req.Phone,
		LastLogin: &now,
	}
	if req.DateOfBirth != nil {
		if t, perr := time.Parse("2006-01-02", *req.DateOfBirth); perr == nil {
			user.DateOfBirth = &t
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	token, err := generateToken(user.ID)
	if err != nil {
		log.Println("[ERROR] token sign:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during registration")
	}

	log.Printf("[SUCCESS] Registered user %s (%s)", user.ID, user.Role)
	return helper.JsonCreated(c, "User registered successfully", fiber.Map{
		"user":  user,
		"token": token,
	})
}

/* =========================
   POST /api/auth/login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during login")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account is deactivated. Please contact administrator.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := generateToken(user.ID)
	if err != nil {
		log.Println("[ERROR] token sign:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during login")
	}

	now := time.Now()
	if err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Update("last_login", now).Error; err != nil {
		// non-fatal
		log.Println("[WARN] last_login update failed:", err)
	}
	user.LastLogin = &now

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

/* =========================
   GET /api/auth/me
   ========================= */

func (ctl *AuthController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "User profile fetched successfully", fiber.Map{"user": user})
}

/* =========================
   GET /api/auth/verify
   ========================= */

func (ctl *AuthController) VerifyToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token verification failed")
	}

	return helper.JsonOK(c, "Token is valid", fiber.Map{"user": user})
}

/* =========================
   POST /api/auth/logout
   ========================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	// stateless JWT; client discards the token
	return helper.JsonOK(c, "Logout successful. Please remove the token from client storage.", nil)
}
