package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"
	"inventory-app/services"
)

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	idgen.Init()

	if config.SeedDemoData {
		database.RunSeeders(db)
	}

	app := fiber.New()
	config.SetupCORS(app)

	mailer := services.NewMailer()
	workOrderService := services.NewWorkOrderService(db, mailer)
	intakeService := services.NewIntakeService(db)
	transferService := services.NewTransferService(db)

	routes.SetupAuthRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupStaffRoutes(app, db)
	routes.SetupPartRoutes(app, db)
	routes.SetupMachineRoutes(app, db)
	routes.SetupWorkOrderRoutes(app, db, workOrderService)
	routes.SetupReportRoutes(app, db)
	routes.SetupBulkRoutes(app, db)

	routes.SetupMobileIntakeRoutes(app, db, intakeService)
	routes.SetupMobileOutwardRoutes(app, db, transferService)
	routes.SetupMobileWorkOrderRoutes(app, db, workOrderService)
	routes.SetupMobileInventoryRoutes(app, db)

	log.Fatal(app.Listen(":" + config.APP_PORT))
}
