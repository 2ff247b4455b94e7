package config

import (
	"log"
	"os"

	"siwatours/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectionDb() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		log.Printf("error connect to database %s", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.VerificationToken{},
		&entity.MFASecret{},
		&entity.SecurityLog{},
		&entity.Trip{},
		&entity.Booking{},
		&entity.GalleryImage{},
	)
}
