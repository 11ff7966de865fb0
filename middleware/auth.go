package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"inventory-app/config"
	"inventory-app/models"
	"inventory-app/types"
)

// AuthMiddleware validates the bearer token and rebuilds the session user
// from its claims into ctx.Locals("user").
func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
			"error":   err.Error(),
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
		})
	}

	user := models.User{}
	if v, ok := claims["email"].(string); ok {
		user.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		user.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		user.Role = v
	}
	if v, ok := claims["staff_id"].(string); ok && v != "" {
		var id types.SnowflakeID
		if err := id.UnmarshalJSON([]byte(`"` + v + `"`)); err == nil {
			user.StaffID = id
		}
	}
	if raw, ok := claims["warehouse_ids"].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				var id types.SnowflakeID
				if err := id.UnmarshalJSON([]byte(`"` + s + `"`)); err == nil {
					user.WarehouseIDs = append(user.WarehouseIDs, id)
				}
			}
		}
	}

	if user.Role == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid role claim",
		})
	}

	ctx.Locals("user", user)

	return ctx.Next()
}

// CurrentUser returns the session user stored by AuthMiddleware.
func CurrentUser(ctx *fiber.Ctx) models.User {
	user, _ := ctx.Locals("user").(models.User)
	return user
}

// RequireRoles rejects the request when the session role is not in the list.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := CurrentUser(ctx)
		for _, role := range roles {
			if user.Role == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: You do not have permission",
		})
	}
}
