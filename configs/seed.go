package configs

import (
	"github.com/Zaara786/plush-palate/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin inserts one administrator when the table is empty.
// ADMIN_PASSWORD is never defaulted to something guessable: when unset,
// a password is generated and printed exactly once.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.Admin{
		Username: cfg.AdminUsername,
		Password: string(hash),
		FullName: "Restaurant Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if generated {
		logrus.Warnf("⚠️ generated password for admin %q: %s (set ADMIN_PASSWORD to choose your own)", admin.Username, password)
	} else {
		logrus.Infof("seeded admin %q", admin.Username)
	}
	return nil
}
