package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"englishquest/internal/config"
	"englishquest/internal/models"
)

// Connect opens a postgres connection and waits for the database to become
// reachable. Container setups often start the API before the database accepts
// connections, so the ping is retried.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DataBase, cfg.Port, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	maxRetries := 10
	var pingErr error
	for i := 1; i <= maxRetries; i++ {
		pingErr = sqlDB.Ping()
		if pingErr == nil {
			return db, nil
		}
		log.Printf("DB not ready (attempt %d/%d). Retrying in 3 seconds...", i, maxRetries)
		time.Sleep(3 * time.Second)
	}

	sqlDB.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, pingErr)
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Level{},
		&models.Lesson{},
		&models.UserProgress{},
		&models.WrongQuestion{},
	)
}
