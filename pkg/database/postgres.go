package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"saypal-backend/pkg/config"
)

// NewPostgresConnection opens the gorm connection used by every repository.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
