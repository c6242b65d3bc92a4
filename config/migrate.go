package config

import (
	"log"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")

	// Ensure the catalog is seeded even on normal migration
	SeedCategories(db)
	SeedProducts(db)

	return err
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	models := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Category{},
	}

	if err := db.Migrator().DropTable(models...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(models...); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	SeedCategories(db)
	SeedProducts(db)

	log.Println("Database reset and migration completed successfully.")
	return nil
}
