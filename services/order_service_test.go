package services

import (
	"strconv"
	"testing"

	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestPlaceOrderSnapshotsItemName(t *testing.T) {
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepository(db)
	menuSvc := NewMenuService(menuRepo)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), menuRepo)

	itemID, err := menuSvc.Create(MenuItemInput{Name: "Ramen", Price: "9.00", IsAvailable: true})
	require.NoError(t, err)

	orderID, err := orderSvc.Place(itoa(itemID), "2", "5")
	require.NoError(t, err)
	require.NotZero(t, orderID)

	// rename the item afterwards; the order keeps the old name
	require.NoError(t, menuSvc.Update(itemID, MenuItemInput{Name: "Tonkotsu Ramen", Price: "10.00"}))

	orders, err := orderSvc.Recent(10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Ramen", orders[0].ItemName)
	require.NotNil(t, orders[0].ItemID)
	assert.Equal(t, itemID, *orders[0].ItemID)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepository(db)
	orderSvc := NewOrderService(repository.NewOrderRepository(db), menuRepo)

	orderID, err := orderSvc.Place("424242", "1", "Pickup")
	require.NoError(t, err, "a vanished item must not fail the order")

	orders, err := orderSvc.Recent(10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, UnknownItemName, orders[0].ItemName)
	assert.Nil(t, orders[0].ItemID)
	assert.NotZero(t, orderID)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name     string
		itemID   string
		quantity string
	}{
		{name: "quantity zero", itemID: "1", quantity: "0"},
		{name: "quantity negative", itemID: "1", quantity: "-3"},
		{name: "quantity not a number", itemID: "1", quantity: "two"},
		{name: "item id garbage", itemID: "abc", quantity: "1"},
		{name: "item id missing", itemID: "", quantity: "1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db := newTestDB(t)
			menuRepo := repository.NewMenuRepository(db)
			orderSvc := NewOrderService(repository.NewOrderRepository(db), menuRepo)

			_, err := orderSvc.Place(testCase.itemID, testCase.quantity, "1")
			assert.True(t, apperr.IsValidation(err), "want validation error, got %v", err)

			count, err := orderSvc.Count()
			require.NoError(t, err)
			assert.Zero(t, count, "nothing may be written on invalid input")
		})
	}
}
