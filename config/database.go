package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the PostgreSQL connection from DATABASE_URL.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
