package routes

import (
	"log"

	"smartscore/backend/config"
	"smartscore/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp builds the Fiber app with the global middleware and every route registered.
func NewApp(db *gorm.DB, cfg *config.Config, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "SmartScore",
		BodyLimit:    cfg.UploadMaxBytes,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Request headers are echoed back when AllowHeaders is empty.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	SetupRoutes(app, db, cfg, logger)
	return app
}
