package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotelms/internal/database"
	"hotelms/internal/domain"
)

// Schema setup plus demo data. On Postgres this also installs the exclusion
// constraint that makes overlapping blocking bookings unrepresentable at the
// storage level, backing up the application-level conflict check.
const overlapConstraintDDL = `
CREATE EXTENSION IF NOT EXISTS btree_gist;
ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
  EXCLUDE USING gist (
    room_id WITH =,
    daterange(start_date::date, end_date::date) WITH &&
  )
  WHERE (status IN ('PENDING', 'CONFIRMED', 'CHECKED_IN'));
`

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Profile{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Transaction{},
	); err != nil {
		log.Fatal(err)
	}

	if isPostgres(dsn) {
		if err := db.Exec(overlapConstraintDDL).Error; err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				log.Fatal(err)
			}
		}
	}

	seedAdmin(db)
	seedRooms(db)

	log.Println("seed complete")
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}

	var existing domain.Profile
	if err := db.First(&existing, "email = ?", strings.ToLower(email)).Error; err == nil {
		log.Println("admin already present:", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := domain.Profile{
		Role:         domain.RoleAdmin,
		FullName:     "Administrator",
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("created admin:", email)
}

func seedRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&domain.Room{}).Count(&count).Error; err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		return
	}

	demo := []domain.Room{
		{Number: "101", Type: "SINGLE", Price: 35000, Status: domain.RoomAvailable,
			Equipments: datatypes.NewJSONSlice([]string{"wifi", "tv"})},
		{Number: "102", Type: "DOUBLE", Price: 50000, Status: domain.RoomAvailable,
			Equipments: datatypes.NewJSONSlice([]string{"wifi", "tv", "minibar"})},
		{Number: "201", Type: "SUITE", Price: 90000, Status: domain.RoomCleaning,
			Equipments: datatypes.NewJSONSlice([]string{"wifi", "tv", "minibar", "balcony"})},
	}
	for i := range demo {
		demo[i].CreatedAt = time.Now()
		if err := db.Create(&demo[i]).Error; err != nil {
			log.Fatal(err)
		}
	}
	log.Println("seeded", len(demo), "rooms")
}
