// repository/reservation_repository.go
package repository

import (
	"github.com/Zaara786/plush-palate/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(resv *entity.Reservation) error {
	return r.DB.Create(resv).Error
}

func (r *ReservationRepository) Recent(limit int) ([]entity.Reservation, error) {
	var resvs []entity.Reservation
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&resvs).Error
	return resvs, err
}

func (r *ReservationRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Reservation{}).Count(&count).Error
	return count, err
}
