package entity

import (
	"gorm.io/gorm"
)

// Order keeps ItemName as a snapshot taken at order time, so history
// stays readable after the menu item is renamed or deleted. ItemID is
// nullable and set to NULL when the item goes away.
type Order struct {
	gorm.Model
	ItemID   *uint     `json:"itemId"`
	Item     *MenuItem `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	ItemName string    `json:"itemName"`
	Quantity int       `json:"quantity"`
	TableNo  string    `json:"tableNo"`
}
