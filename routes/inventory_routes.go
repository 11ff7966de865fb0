package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"
)

func SetupPartRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewPartController(db)
	api := app.Group(config.MAIN_ROUTES+"/parts", middleware.AuthMiddleware)

	api.Get("/", controller.GetParts)
	api.Get("/:id", controller.GetPartByID)

	write := middleware.RequireRoles(models.RoleSiteAdmin, models.RoleWarehouseManager)
	api.Put("/:id", write, controller.UpdatePart)
	api.Delete("/:id", write, controller.DeletePart)
}

func SetupMachineRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewMachineController(db)
	api := app.Group(config.MAIN_ROUTES+"/machines", middleware.AuthMiddleware)

	api.Get("/", controller.GetMachines)
	api.Get("/:id", controller.GetMachineByID)

	write := middleware.RequireRoles(models.RoleSiteAdmin, models.RoleWarehouseManager)
	api.Put("/:id", write, controller.UpdateMachine)
	api.Delete("/:id", write, controller.DeleteMachine)
}
