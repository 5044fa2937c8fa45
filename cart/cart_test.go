package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-shop/models"
	"pos-shop/models/enum"
)

func testCatalog() []models.CatalogProduct {
	return []models.CatalogProduct{
		{ID: 1, Code: "P001", Name: "Beer Lao", Price: 1000, Stock: 3},
		{ID: 2, Code: "P002", Name: "Sticky Rice", Price: 500, Stock: 10},
		{ID: 3, Code: "P003", Name: "Sold Out Snack", Price: 200, Stock: 0},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	m.SetCatalog(testCatalog())
	return m
}

func TestAddItemCreatesLineAtQuantityOne(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.AddItem(1))

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddItemIncrementsUpToStock(t *testing.T) {
	m := newTestManager(t)

	// stock of product 1 is 3
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(1))

	err := m.AddItem(1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	m := newTestManager(t)

	assert.ErrorIs(t, m.AddItem(999), ErrUnknownProduct)
	assert.Equal(t, 0, m.Len())
}

func TestAddItemOutOfStock(t *testing.T) {
	m := newTestManager(t)

	assert.ErrorIs(t, m.AddItem(3), ErrOutOfStock)
	assert.Equal(t, 0, m.Len())
}

func TestAddItemKeepsOneLinePerProduct(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(2))
	require.NoError(t, m.AddItem(1))

	lines := m.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestSetQuantityExact(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(2))

	clamped, err := m.SetQuantity(0, 7)
	require.NoError(t, err)
	assert.False(t, clamped)
	assert.Equal(t, 7, m.Lines()[0].Quantity)
}

func TestSetQuantityClampsToStock(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(1))

	clamped, err := m.SetQuantity(0, 99)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, 3, m.Lines()[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(2))

	clamped, err := m.SetQuantity(0, 0)
	require.NoError(t, err)
	assert.False(t, clamped)

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Product.ID)
}

func TestSetQuantityBadIndex(t *testing.T) {
	m := newTestManager(t)

	_, err := m.SetQuantity(0, 1)
	assert.ErrorIs(t, err, ErrBadIndex)
}

func TestRemoveItemShiftsLaterIndicesDown(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(2))

	before := m.Lines()
	require.Len(t, before, 2)

	require.NoError(t, m.RemoveItem(0))

	after := m.Lines()
	require.Len(t, after, 1)
	assert.Equal(t, before[1].Product.ID, after[0].Product.ID)
	assert.Equal(t, before[1].Quantity, after[0].Quantity)

	assert.ErrorIs(t, m.RemoveItem(5), ErrBadIndex)
}

func TestTotal(t *testing.T) {
	m := newTestManager(t)
	assert.Equal(t, 0.0, m.Total())

	// {price: 1000, qty: 2} + {price: 500, qty: 1} = 2500
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(2))

	assert.Equal(t, 2500.0, m.Total())
}

func TestCheckoutPayloadValidation(t *testing.T) {
	m := newTestManager(t)

	_, err := m.CheckoutPayload(models.CheckoutCustomerRequest{Name: "Noy"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	require.NoError(t, m.AddItem(1))

	_, err = m.CheckoutPayload(models.CheckoutCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrCustomerName)
}

func TestCheckoutPayloadPreservesOrderAndDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(2))
	require.NoError(t, m.AddItem(1))
	require.NoError(t, m.AddItem(2))

	payload, err := m.CheckoutPayload(models.CheckoutCustomerRequest{
		Name:  " Noy ",
		Phone: "020 555 1234",
	})
	require.NoError(t, err)

	require.Len(t, payload.Cart, 2)
	assert.Equal(t, models.CheckoutItemRequest{ProductID: 2, Quantity: 2}, payload.Cart[0])
	assert.Equal(t, models.CheckoutItemRequest{ProductID: 1, Quantity: 1}, payload.Cart[1])

	assert.Equal(t, "Noy", payload.Customer.Name)
	assert.Equal(t, enum.PaymentMethodTransfer, payload.Customer.PaymentMethod)
}

func TestResetClearsLinesKeepsCatalog(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(1))

	m.Reset()

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0.0, m.Total())
	assert.Len(t, m.Catalog(), 3)
	assert.NoError(t, m.AddItem(1))
}

func TestSetCatalogDoesNotRewriteLineSnapshots(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddItem(1))

	m.SetCatalog([]models.CatalogProduct{
		{ID: 1, Code: "P001", Name: "Beer Lao", Price: 1200, Stock: 1},
	})

	assert.Equal(t, 1000.0, m.Lines()[0].Product.Price)
	assert.Equal(t, 1000.0, m.Total())
}
