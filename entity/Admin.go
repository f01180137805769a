package entity

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash, never plaintext
	FullName string `json:"fullName"`
}
