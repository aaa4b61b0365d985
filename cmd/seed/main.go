package main

import (
	"log"
	"os"
	"time"

	"automart-be/internal/model"
	"automart-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding marketplace accounts and sample listings\n")

	admin := seedUser(db, "admin@automart.local", "Site Admin", "admin")
	dealer := seedUser(db, "dealer@automart.local", "Prestige Motors", "dealer")
	seedUser(db, "buyer@automart.local", "Budi Santoso", "buyer")
	_ = admin

	color.Yellow("\nSeeding sample cars for dealer %s", dealer.Email)

	cars := []model.Car{
		{
			DealerId:     dealer.Id,
			Make:         "Toyota",
			CarModel:     "Avanza",
			Year:         2021,
			Price:        185_000_000,
			Mileage:      42_000,
			FuelType:     "gasoline",
			Transmission: "manual",
			BodyType:     "mpv",
			Color:        "silver",
			Condition:    "used",
			Description:  "Well maintained family MPV, full service history at authorized workshop.",
			Images:       datatypes.NewJSONSlice([]string{}),
			Status:       "available",
		},
		{
			DealerId:     dealer.Id,
			Make:         "Honda",
			CarModel:     "Civic Turbo",
			Year:         2023,
			Price:        565_000_000,
			Mileage:      8_500,
			FuelType:     "gasoline",
			Transmission: "automatic",
			BodyType:     "sedan",
			Color:        "white",
			Condition:    "used",
			Description:  "Low mileage sedan, single owner, still under factory warranty.",
			Images:       datatypes.NewJSONSlice([]string{}),
			Status:       "available",
		},
		{
			DealerId:     dealer.Id,
			Make:         "Hyundai",
			CarModel:     "Ioniq 5",
			Year:         2024,
			Price:        780_000_000,
			Mileage:      1_200,
			FuelType:     "electric",
			Transmission: "automatic",
			BodyType:     "suv",
			Color:        "gray",
			Condition:    "used",
			Description:  "Long range variant, battery health 100%, includes home charger.",
			Images:       datatypes.NewJSONSlice([]string{}),
			Status:       "available",
		},
	}

	for _, c := range cars {
		var existing model.Car
		err := db.Where("dealer_id = ? AND make = ? AND model = ? AND year = ?",
			c.DealerId, c.Make, c.CarModel, c.Year).First(&existing).Error
		if err == nil {
			color.Yellow("Car %s %s already exists, skipping...", c.Make, c.CarModel)
			continue
		}

		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating car %s %s: %v", c.Make, c.CarModel, err)
		} else {
			color.Green("Created car: %s %s (%d)", c.Make, c.CarModel, c.Year)
		}
	}

	color.Cyan("\n✅ Seeding completed at %s", time.Now().Format(time.RFC3339))
}

func seedUser(db *gorm.DB, email, fullName, role string) model.User {
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("User %s already exists, skipping...", email)
		return existing
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing seed password: %v", err)
	}
	hashStr := string(hash)

	user := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     fullName,
		Role:         role,
		Status:       "active",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error creating user %s: %v", email, err)
	}

	color.Green("Created %s account: %s", role, email)
	return user
}
