package utils

import (
	"fmt"
	"log"
	"time"

	"smartscore/backend/config"
	"smartscore/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the configured store and creates any missing tables.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		// Each connection to ":memory:" is a separate database, so the pool is pinned to one below.
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DBName))
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(60 * time.Second)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
	}

	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("Database ready (%s/%s)", cfg.DBDriver, cfg.DBName)
	return db, nil
}
