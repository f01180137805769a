// repository/order_repository.go
package repository

import (
	"github.com/Zaara786/plush-palate/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

func (r *OrderRepository) Recent(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}
