package config

import (
	"fmt"
	"log"
	"os"

	"blog-platform/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultModeratorEmail = "moderator@local"

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "blog_platform"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Blog{},
		&models.BlogPost{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := seedRoles(db); err != nil {
		log.Fatal("Failed to seed roles:", err)
	}
	if err := seedDefaultModerator(db); err != nil {
		log.Fatal("Failed to seed default moderator:", err)
	}

	return db
}

func seedRoles(db *gorm.DB) error {
	for _, value := range []models.RoleValue{models.RoleWriter, models.RoleModerator} {
		role := models.Role{Value: value}
		if err := db.Where("value = ?", value).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedDefaultModerator guarantees at least one moderator account exists,
// since createModeratorUser itself requires a moderator token.
func seedDefaultModerator(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", defaultModeratorEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var role models.Role
	if err := db.Where("value = ?", models.RoleModerator).First(&role).Error; err != nil {
		return err
	}

	password := getEnv("DEFAULT_MODERATOR_PASSWORD", "password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	moderator := models.User{
		Email:    defaultModeratorEmail,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	return db.Create(&moderator).Error
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
