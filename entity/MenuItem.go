package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"default:Uncategorized" json:"category"`
	IsAvailable bool            `json:"isAvailable"`

	// weak back-reference; orders survive the item's deletion
	Orders []Order `gorm:"foreignKey:ItemID" json:"-"`
}
