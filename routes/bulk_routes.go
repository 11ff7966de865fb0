package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"
)

func SetupBulkRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewBulkController(db)
	api := app.Group(config.MAIN_ROUTES+"/bulk",
		middleware.AuthMiddleware, middleware.RequireRoles(models.RoleSiteAdmin))

	api.Get("/template", controller.DownloadTemplate)
	api.Post("/import", controller.Import)
}
