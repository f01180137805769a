// repository/menu_repository.go
package repository

import (
	"errors"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// newest first, same order the dashboard and home page list them
func (r *MenuRepository) All() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Available() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("is_available = ?", true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Categories() ([]string, error) {
	var cats []string
	err := r.DB.Model(&entity.MenuItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes the item only; orders referencing it keep their
// snapshot name and drop to a NULL item reference.
func (r *MenuRepository) Delete(id uint) error {
	res := r.DB.Unscoped().
		Model(&entity.Order{}).
		Where("item_id = ?", id).
		Update("item_id", nil)
	if res.Error != nil {
		return res.Error
	}
	del := r.DB.Unscoped().Delete(&entity.MenuItem{}, id)
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&count).Error
	return count, err
}
