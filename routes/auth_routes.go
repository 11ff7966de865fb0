package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", controller.Login)
	api.Get("/logout", middleware.AuthMiddleware, controller.Logout)
	api.Get("/me", middleware.AuthMiddleware, controller.Me)
}
