package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewStaffController(db)
	api := app.Group(config.MAIN_ROUTES+"/staff",
		middleware.AuthMiddleware, middleware.RequireRoles(models.RoleSiteAdmin))

	api.Get("/", controller.GetAllStaff)
	api.Get("/:id", controller.GetStaffByID)
	api.Post("/", controller.CreateStaff)
	api.Put("/:id", controller.UpdateStaff)
	api.Delete("/:id", controller.DeleteStaff)
}
