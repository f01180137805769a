package entity

import (
	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Persons int    `json:"persons"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}
