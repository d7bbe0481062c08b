package config

import (
	"log"
	"os"
	"time"

	"pavilion-backend/models"
	"pavilion-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("Failed to access database pool")
	}
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	DB = db
}

func MigrateDB() {
	err := DB.AutoMigrate(
		&models.Location{},
		&models.Room{},
		&models.Customer{},
		&models.Admin{},
		&models.Reservation{},
		&models.Block{},
		&models.AuditLog{},
		&models.NewsletterSubscriber{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// SeedDatabase creates the default admin account and, when the
// locations table is empty, a pair of demo locations with rooms.
func SeedDatabase() {
	seedAdmin()
	seedLocations()
}

func seedAdmin() {
	var count int64
	if err := DB.Model(&models.Admin{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		log.Printf("Failed to check admin account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "strongpassword"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "Eternal Fusion Pavilion Administrator",
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin account: %v", err)
		return
	}
	log.Println("Default admin account created")
}

func seedLocations() {
	var count int64
	if err := DB.Model(&models.Location{}).Count(&count).Error; err != nil {
		log.Printf("Failed to check locations: %v", err)
		return
	}
	if count > 0 {
		return
	}

	locations := []models.Location{
		{
			Code:                   "PAV",
			Name:                   "Eternal Fusion Pavilion",
			Timezone:               "America/New_York",
			MaxGuestsPerSlot:       120,
			MaxReservationsPerSlot: 30,
			Rooms: []models.Room{
				{Code: "PAV-MAIN", Name: "Main Dining Hall", MaxCapacity: 30, IsActive: true},
				{Code: "PAV-GRDN", Name: "Garden Room", MaxCapacity: 20, IsActive: true},
				{Code: "PAV-PRIV", Name: "Private Salon", MaxCapacity: 12, IsActive: true},
			},
		},
		{
			Code:                   "RVR",
			Name:                   "Pavilion Riverside",
			Timezone:               "America/New_York",
			MaxGuestsPerSlot:       80,
			MaxReservationsPerSlot: 20,
			Rooms: []models.Room{
				{Code: "RVR-TERR", Name: "River Terrace", MaxCapacity: 24, IsActive: true},
				{Code: "RVR-LNGE", Name: "Lounge", MaxCapacity: 16, IsActive: true},
			},
		},
	}
	for i := range locations {
		if err := DB.Create(&locations[i]).Error; err != nil {
			log.Printf("Failed to seed location %s: %v", locations[i].Code, err)
		}
	}
	log.Println("Demo locations seeded")
}
