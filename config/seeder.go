package config

import (
	"fmt"
	"log"

	"github.com/Kreissys/mi-ecommerce-pro/models"
	"github.com/Kreissys/mi-ecommerce-pro/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var seedCategories = []models.Category{
	{Name: "Estrategia", Slug: "estrategia"},
	{Name: "Familiares", Slug: "familiares"},
	{Name: "Juegos de Cartas", Slug: "juegos-de-cartas"},
	{Name: "Juegos de Rol (RPG)", Slug: "juegos-de-rol-rpg"},
	{Name: "Juegos de Fiesta (Party)", Slug: "juegos-de-fiesta-party"},
}

type seedProduct struct {
	category string // category slug
	name     string
	price    string
	stock    int
}

var seedProducts = []seedProduct{
	// Estrategia
	{"estrategia", "Catan", "180.00", 25},
	{"estrategia", "Risk", "150.00", 20},
	{"estrategia", "Carcassonne", "130.00", 30},
	{"estrategia", "Terraforming Mars", "250.00", 15},
	{"estrategia", "Gloomhaven", "550.00", 5},
	{"estrategia", "Scythe", "320.00", 10},
	{"estrategia", "7 Wonders", "200.00", 20},
	{"estrategia", "Azul", "160.00", 25},
	{"estrategia", "Wingspan", "230.00", 18},
	{"estrategia", "Root", "280.00", 12},
	// Familiares
	{"familiares", "Ticket to Ride", "190.00", 30},
	{"familiares", "Dixit", "140.00", 35},
	{"familiares", "Monopoly", "80.00", 50},
	{"familiares", "Clue", "70.00", 40},
	{"familiares", "Jenga", "60.00", 60},
	{"familiares", "Uno", "30.00", 100},
	{"familiares", "Scrabble", "90.00", 30},
	{"familiares", "Sequence", "85.00", 25},
	{"familiares", "King of Tokyo", "150.00", 20},
	{"familiares", "Dobble", "50.00", 40},
	// Juegos de Cartas
	{"juegos-de-cartas", "Magic: The Gathering (Booster)", "20.00", 200},
	{"juegos-de-cartas", "Pokémon TCG (Booster)", "22.00", 150},
	{"juegos-de-cartas", "Yu-Gi-Oh! (Booster)", "18.00", 180},
	{"juegos-de-cartas", "Exploding Kittens", "90.00", 50},
	{"juegos-de-cartas", "Unstable Unicorns", "95.00", 45},
	{"juegos-de-cartas", "The Mind", "60.00", 30},
	{"juegos-de-cartas", "Sushi Go Party!", "85.00", 40},
	{"juegos-de-cartas", "Coup", "50.00", 60},
	{"juegos-de-cartas", "Love Letter", "40.00", 70},
	{"juegos-de-cartas", "Slay the Spire (Juego de Mesa)", "350.00", 10},
	// Juegos de Rol (RPG)
	{"juegos-de-rol-rpg", "D&D Player's Handbook", "180.00", 30},
	{"juegos-de-rol-rpg", "D&D Monster Manual", "180.00", 25},
	{"juegos-de-rol-rpg", "D&D Dungeon Master's Guide", "180.00", 20},
	{"juegos-de-rol-rpg", "Pathfinder Core Rulebook", "200.00", 15},
	{"juegos-de-rol-rpg", "Call of Cthulhu Starter Set", "100.00", 20},
	{"juegos-de-rol-rpg", "Cyberpunk RED Core Rulebook", "210.00", 10},
	{"juegos-de-rol-rpg", "Vampire: The Masquerade", "190.00", 12},
	{"juegos-de-rol-rpg", "Starfinder Core Rulebook", "200.00", 10},
	{"juegos-de-rol-rpg", "FATE Core System", "90.00", 15},
	{"juegos-de-rol-rpg", "Blades in the Dark", "160.00", 8},
	// Juegos de Fiesta (Party)
	{"juegos-de-fiesta-party", "Codenames", "80.00", 50},
	{"juegos-de-fiesta-party", "Cards Against Humanity", "100.00", 40},
	{"juegos-de-fiesta-party", "What Do You Meme?", "110.00", 35},
	{"juegos-de-fiesta-party", "Secret Hitler", "130.00", 20},
	{"juegos-de-fiesta-party", "Telestrations", "100.00", 25},
	{"juegos-de-fiesta-party", "Just One", "90.00", 30},
	{"juegos-de-fiesta-party", "Werewolf", "60.00", 40},
	{"juegos-de-fiesta-party", "The Quacks of Quedlinburg", "210.00", 15},
	{"juegos-de-fiesta-party", "Wits & Wagers", "120.00", 18},
	{"juegos-de-fiesta-party", "Taco Gato Cabra Queso Pizza", "50.00", 60},
}

func SeedCategories(db *gorm.DB) {
	log.Println("🌱 Seeding categories...")

	for _, category := range seedCategories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&category).Error; err != nil {
					log.Printf("Failed to seed category %s: %v", category.Name, err)
				} else {
					log.Printf("Category seeded: %s (ID: %d)", category.Name, category.ID)
				}
			}
		} else {
			log.Printf("Category already exists: %s", category.Name)
		}
	}

	log.Println("✅ Seeding complete.")
}

func SeedProducts(db *gorm.DB) {
	log.Println("🌱 Seeding products...")

	for _, seed := range seedProducts {
		var category models.Category
		if err := db.Where("slug = ?", seed.category).First(&category).Error; err != nil {
			log.Printf("Category %s missing, skipping product %s", seed.category, seed.name)
			continue
		}

		slug := utils.Slugify(seed.name)

		var existing models.Product
		if err := db.Where("slug = ?", slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				product := models.Product{
					CategoryID:  category.ID,
					Name:        seed.name,
					Slug:        slug,
					Description: fmt.Sprintf("Descripción de %s.", seed.name),
					Price:       decimal.RequireFromString(seed.price),
					Stock:       seed.stock,
					Available:   true,
				}
				if err := db.Create(&product).Error; err != nil {
					log.Printf("Failed to seed product %s: %v", seed.name, err)
				} else {
					log.Printf("Product seeded: %s (ID: %d)", seed.name, product.ID)
				}
			}
		} else {
			log.Printf("Product already exists: %s", seed.name)
		}
	}

	log.Println("✅ Seeding complete.")
}
