// Package database provides the Postgres connection for the content service.
package database

import (
	"fmt"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/config"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a gorm connection to Postgres using the service configuration.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate applies schema migrations for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Bookmark{},
		&models.ReadingHistory{},
		&models.ActivityLog{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
