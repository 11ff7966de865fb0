package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewReportController(db)
	api := app.Group(config.MAIN_ROUTES, middleware.AuthMiddleware)

	api.Get("/dashboard", controller.Dashboard)
	api.Get("/movements", controller.GetMovements)
	api.Get("/inventory/excel", controller.ExportExcel)
}
