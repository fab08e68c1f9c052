package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/model"
)

// Categories and locations are reference data with no create endpoints; the
// API only resolves them by name and city. This command provisions a default
// set so events can be created against a fresh database.
var seedCategories = []model.EventCategory{
	{Name: "Comedy"},
	{Name: "Music"},
	{Name: "Sports"},
	{Name: "Tech"},
	{Name: "Theatre"},
}

var seedLocations = []model.Location{
	{City: "Bengaluru", State: "Karnataka", Country: "India", Pincode: "560001"},
	{City: "Mumbai", State: "Maharashtra", Country: "India", Pincode: "400001"},
	{City: "New Delhi", State: "Delhi", Country: "India", Pincode: "110001"},
	{City: "Hyderabad", State: "Telangana", Country: "India", Pincode: "500001"},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.EventCategory{}, &model.Location{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created := 0
	for _, category := range seedCategories {
		var existing model.EventCategory
		err := gormDB.WithContext(ctx).Where("name = ?", category.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check category %q: %v", category.Name, err)
		}
		if err := gormDB.WithContext(ctx).Create(&category).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", category.Name, err)
		}
		created++
	}
	log.Printf("Seeded %d new categories (%d total in seed set)", created, len(seedCategories))

	created = 0
	for _, location := range seedLocations {
		var existing model.Location
		err := gormDB.WithContext(ctx).Where("city = ?", location.City).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check location %q: %v", location.City, err)
		}
		if err := gormDB.WithContext(ctx).Create(&location).Error; err != nil {
			log.Fatalf("Failed to create location %q: %v", location.City, err)
		}
		created++
	}
	log.Printf("Seeded %d new locations (%d total in seed set)", created, len(seedLocations))

	log.Println("Seed completed")
}
