package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pressline/blogapi/models"
)

// SeedFixtures loads the default users and categories when the database is
// still empty. This is the only way users enter the system; there is no
// user-management API.
func SeedFixtures(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		if err := seedUsers(db); err != nil {
			return err
		}
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		if err := seedCategories(db); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	fixtures := []struct {
		username string
		email    string
		password string
		roles    []string
		name     string
		surname  string
	}{
		{"admin", "admin@example.com", "H9Lb9xeqIL470V8", []string{"ROLE_USER", "ROLE_ADMIN"}, "Jan", "Kowalski"},
		{"redactor", "redactor@example.com", "39OzBKMbkku7Vgk", []string{"ROLE_USER"}, "Adam", "Nowak"},
	}

	for _, f := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     f.username,
			Email:        f.email,
			PasswordHash: string(hash),
			Roles:        f.roles,
			Name:         f.name,
			Surname:      f.surname,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("seeded fixture user %q", f.username)
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Good news", Description: "Only good news"},
		{Name: "Bad news", Description: "Only bad news"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
