package services

import (
	"strings"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/repository"

	"github.com/shopspring/decimal"
)

const DefaultCategory = "Uncategorized"

// MenuItemInput carries the raw form values of the add/edit menu forms.
// IsAvailable is already a bool because checkbox absence simply means
// unavailable, never a validation error.
type MenuItemInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	IsAvailable bool
}

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.All()
}

func (s *MenuService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.Available()
}

func (s *MenuService) Categories() ([]string, error) {
	return s.Repo.Categories()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(in MenuItemInput) (uint, error) {
	item, err := validateMenuInput(in)
	if err != nil {
		return 0, err
	}
	if err := s.Repo.Create(item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *MenuService) Update(id uint, in MenuItemInput) error {
	item, err := validateMenuInput(in)
	if err != nil {
		return err
	}
	return s.Repo.Update(id, map[string]any{
		"name":         item.Name,
		"description":  item.Description,
		"price":        item.Price,
		"category":     item.Category,
		"is_available": item.IsAvailable,
	})
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) Count() (int64, error) {
	return s.Repo.Count()
}

// validateMenuInput runs every check before anything touches the store.
func validateMenuInput(in MenuItemInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "name is required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, apperr.Invalid("price", "price must be a number")
	}
	if price.IsNegative() {
		return nil, apperr.Invalid("price", "price cannot be negative")
	}
	// normalize to two-decimal currency, "12.5" becomes "12.50"
	price = price.Round(2)

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	return &entity.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Category:    category,
		IsAvailable: in.IsAvailable,
	}, nil
}
