package FiberConfig

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/template/html"

	"HRKeeper/Config"
	"HRKeeper/Controllers"
	"HRKeeper/Models"
	"HRKeeper/Templates"
	"HRKeeper/middleware"
)

func SetupRoutes(app *fiber.App, stores Models.Stores) {
	// Initialize handlers
	dashboardController := Controllers.NewDashboardController(stores)
	employeeController := Controllers.NewEmployeeController(stores)
	attendanceController := Controllers.NewAttendanceController(stores)
	leaveController := Controllers.NewLeaveController(stores)
	overtimeController := Controllers.NewOvertimeController(stores)
	exportController := Controllers.NewExportController(stores)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Browser views
	app.Get("/", dashboardController.Page)
	app.Get("/employees", employeeController.Page)
	app.Post("/employees", employeeController.Submit)
	app.Get("/attendance", attendanceController.Page)
	app.Post("/attendance", attendanceController.Submit)
	app.Get("/leaves", leaveController.Page)
	app.Post("/leaves", leaveController.Submit)
	app.Get("/overtime", overtimeController.Page)
	app.Post("/overtime", overtimeController.Submit)

	// Downloads
	app.Get("/export/:table/:format", exportController.Download)

	// API group
	api := app.Group("/api")
	api.Get("/dashboard", dashboardController.Metrics)
	api.Get("/employees", employeeController.List)
	api.Post("/employees", employeeController.Create)
	api.Get("/attendance", attendanceController.List)
	api.Post("/attendance", attendanceController.Create)
	api.Get("/leaves", leaveController.List)
	api.Post("/leaves", leaveController.Create)
	api.Get("/overtime", overtimeController.List)
	api.Post("/overtime", overtimeController.Create)
}

// NewApp builds the HTTP app for cfg without starting it.
func NewApp(cfg Config.Config) *fiber.App {
	// Html Template engine
	var engine *html.Engine
	if cfg.TemplatesDir != "" {
		engine = html.New(cfg.TemplatesDir, ".html")
	} else {
		engine = html.NewFileSystem(Templates.FS(), ".html")
	}

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger(cfg.LogFormat, cfg.LogFile))
	if cfg.ErrorLogFile != "" {
		app.Use(middleware.ErrorLogger(cfg.ErrorLogFile))
	}
	app.Use(middleware.Recovery())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	SetupRoutes(app, Models.Connect(cfg.DataDir))
	return app
}

func FiberConfig(cfg Config.Config) error {
	log.Printf("Server Up... data directory %s\n", cfg.DataDir)
	return NewApp(cfg).Listen(cfg.Listen)
}
