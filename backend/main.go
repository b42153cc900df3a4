package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartscore/backend/config"
	"smartscore/backend/routes"
	"smartscore/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat})

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Error initializing database: %v", err)
	}

	app := routes.NewApp(db, cfg, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Println("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Printf("Shutdown: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
