package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
	"inventory-app/models"
	"inventory-app/services"
)

func SetupWorkOrderRoutes(app *fiber.App, db *gorm.DB, service *services.WorkOrderService) {
	controller := controllers.NewWorkOrderController(db, service)
	api := app.Group(config.MAIN_ROUTES+"/workorders", middleware.AuthMiddleware)

	api.Get("/", controller.GetWorkOrders)
	api.Get("/:id", controller.GetWorkOrderByID)
	api.Get("/:id/history", controller.GetWorkOrderHistory)
	api.Post("/", controller.CreateWorkOrder)
	api.Put("/:id/status", controller.UpdateStatus)
	api.Put("/:id/assign", controller.AssignWorkOrder)
	api.Delete("/:id", middleware.RequireRoles(models.RoleSiteAdmin), controller.DeleteWorkOrder)
}
