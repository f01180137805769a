// repository/admin_repository.go
package repository

import (
	"errors"
	"strings"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(username string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.DB.Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	if err := r.DB.Create(admin).Error; err != nil {
		// sqlite reports the duplicate username as a constraint error
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperr.Invalid("username", "already taken")
		}
		return err
	}
	return nil
}

func (r *AdminRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Admin{}).Count(&count).Error
	return count, err
}
