package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers/mobiles"
	"inventory-app/middleware"
	"inventory-app/services"
)

func SetupMobileIntakeRoutes(app *fiber.App, db *gorm.DB, service *services.IntakeService) {
	controller := mobiles.NewMobileIntakeController(db, service)
	api := app.Group(config.MOBILE_ROUTES+"/intake", middleware.AuthMiddleware)

	api.Post("/", controller.Start)
	api.Get("/:session_id", controller.GetSession)
	api.Post("/:session_id/warehouse", controller.ChooseWarehouse)
	api.Post("/:session_id/asset-type", controller.ChooseAssetType)
	api.Post("/:session_id/subtype", controller.ChooseSubtype)
	api.Post("/:session_id/back", controller.Back)
	api.Post("/:session_id/reset", controller.Reset)
	api.Post("/:session_id/submit/part", controller.SubmitPart)
	api.Post("/:session_id/submit/machine", controller.SubmitMachine)
}

func SetupMobileOutwardRoutes(app *fiber.App, db *gorm.DB, service *services.TransferService) {
	controller := mobiles.NewMobileOutwardController(db, service)
	api := app.Group(config.MOBILE_ROUTES+"/outward", middleware.AuthMiddleware)

	api.Post("/", controller.Start)
	api.Get("/:session_id", controller.GetSession)
	api.Post("/:session_id/mode", controller.Begin)
	api.Post("/:session_id/workorder", controller.LinkWorkOrder)
	api.Post("/:session_id/source", controller.SetSource)
	api.Post("/:session_id/category", controller.SetCategory)
	api.Post("/:session_id/items", controller.SelectItems)
	api.Post("/:session_id/quantities", controller.SetQuantities)
	api.Post("/:session_id/destination", controller.SetDestination)
	api.Post("/:session_id/notes", controller.SetNotes)
	api.Post("/:session_id/back", controller.Back)
	api.Post("/:session_id/authorize", controller.Authorize)
}

func SetupMobileWorkOrderRoutes(app *fiber.App, db *gorm.DB, service *services.WorkOrderService) {
	controller := mobiles.NewMobileWorkOrderController(db, service)
	api := app.Group(config.MOBILE_ROUTES+"/workorders", middleware.AuthMiddleware)

	api.Get("/", controller.GetMyWorkOrders)
	api.Get("/:id/history", controller.GetHistory)
	api.Put("/:id/status", controller.UpdateStatus)
	api.Post("/:id/accept", controller.Accept)
}

func SetupMobileInventoryRoutes(app *fiber.App, db *gorm.DB) {
	controller := mobiles.NewMobileInventoryController(db)
	api := app.Group(config.MOBILE_ROUTES+"/inventory", middleware.AuthMiddleware)

	api.Get("/warehouses", controller.GetMyWarehouses)
	api.Get("/warehouses/:warehouse_id/parts", controller.GetParts)
	api.Get("/warehouses/:warehouse_id/machines", controller.GetMachines)
}
