package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/repository"
)

// UnknownItemName is the snapshot stored when the ordered item no
// longer exists. The order itself still goes through.
const UnknownItemName = "Unknown Item"

type OrderService struct {
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{Repo: repo, MenuRepo: menuRepo}
}

// Place validates the order and captures the menu item's current name
// as an immutable snapshot.
func (s *OrderService) Place(itemIDRaw, quantityRaw, tableNo string) (uint, error) {
	itemID, err := strconv.Atoi(strings.TrimSpace(itemIDRaw))
	if err != nil || itemID < 1 {
		return 0, apperr.Invalid("item", "pick a menu item")
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(quantityRaw))
	if err != nil {
		return 0, apperr.Invalid("quantity", "quantity must be a whole number")
	}
	if quantity < 1 {
		return 0, apperr.Invalid("quantity", "quantity must be at least 1")
	}

	itemName := UnknownItemName
	var itemRef *uint
	item, err := s.MenuRepo.FindByID(uint(itemID))
	switch {
	case err == nil:
		itemName = item.Name
		id := item.ID
		itemRef = &id
	case errors.Is(err, apperr.ErrNotFound):
		// keep the sentinel name, no item reference
	default:
		return 0, err
	}

	order := &entity.Order{
		ItemID:   itemRef,
		ItemName: itemName,
		Quantity: quantity,
		TableNo:  strings.TrimSpace(tableNo),
	}
	if err := s.Repo.Create(order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *OrderService) Recent(limit int) ([]entity.Order, error) {
	return s.Repo.Recent(limit)
}

func (s *OrderService) Count() (int64, error) {
	return s.Repo.Count()
}
