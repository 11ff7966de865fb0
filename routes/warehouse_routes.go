package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewWarehouseController(db)
	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware)

	api.Get("/", controller.GetAllWarehouses)
	api.Get("/:id", controller.GetWarehouseByID)

	admin := middleware.RequireRoles(models.RoleSiteAdmin)
	api.Post("/", admin, controller.CreateWarehouse)
	api.Put("/:id", admin, controller.UpdateWarehouse)
	api.Delete("/:id", admin, controller.DeleteWarehouse)
}
