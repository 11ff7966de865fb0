package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/middleware"
	"inventory-app/services"
)

type AuthController struct {
	DB   *gorm.DB
	auth *services.AuthService
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB, auth: services.NewAuthService(DB)}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	user, err := c.auth.Resolve(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access Denied",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	warehouseIDs := make([]string, 0, len(user.WarehouseIDs))
	for _, id := range user.WarehouseIDs {
		warehouseIDs = append(warehouseIDs, id.String())
	}

	expiresAt := time.Now().Add(time.Duration(config.JWTExpiration) * time.Second)

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"staff_id":      user.StaffID.String(),
		"email":         user.Email,
		"name":          user.Name,
		"role":          user.Role,
		"warehouse_ids": warehouseIDs,
		"exp":           expiresAt.Unix(),
		"jti":           uuid.NewString(),
	})

	accessTokenString, err := accessToken.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"jti":   uuid.NewString(),
	})

	refreshTokenString, err := refreshToken.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(refreshTokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successfully",
		"x_token": accessTokenString,
		"user":    user,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(config.GetTokenCookie(""))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Me echoes the session user rebuilt from the token.
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)
	if user.Role == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid session",
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}
