// Package cart holds the in-memory state of one point-of-sale session:
// the product catalog as last fetched and the lines the cashier has rung
// up. Lines are addressed by position. Every mutation invalidates
// previously read indices, so callers must re-read Lines after each call
// rather than caching an index.
package cart

import (
	"errors"
	"strings"

	"pos-shop/models"
)

var (
	ErrUnknownProduct    = errors.New("product not found in catalog")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("not enough stock for requested quantity")
	ErrBadIndex          = errors.New("cart line index out of range")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCustomerName      = errors.New("customer name is required")
)

// Line pairs a product snapshot with the quantity selected. The snapshot
// is taken when the line is created and is not rewritten by later catalog
// refreshes, so a ticket in progress keeps the prices it was rung at.
type Line struct {
	Product  models.CatalogProduct
	Quantity int
}

func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Manager struct {
	catalog map[int]models.CatalogProduct
	lines   []Line
}

func NewManager() *Manager {
	return &Manager{catalog: map[int]models.CatalogProduct{}}
}

// SetCatalog replaces the known catalog wholesale. Existing lines are
// left untouched.
func (m *Manager) SetCatalog(products []models.CatalogProduct) {
	m.catalog = make(map[int]models.CatalogProduct, len(products))
	for _, p := range products {
		m.catalog[p.ID] = p
	}
}

// Catalog returns the products last set, in unspecified order.
func (m *Manager) Catalog() []models.CatalogProduct {
	products := make([]models.CatalogProduct, 0, len(m.catalog))
	for _, p := range m.catalog {
		products = append(products, p)
	}
	return products
}

// AddItem rings up one unit of the given product: a new line at quantity
// 1, or an increment of the existing line. It refuses to exceed the
// catalog stock.
func (m *Manager) AddItem(productID int) error {
	product, ok := m.catalog[productID]
	if !ok {
		return ErrUnknownProduct
	}
	if product.Stock <= 0 {
		return ErrOutOfStock
	}

	for i := range m.lines {
		if m.lines[i].Product.ID == productID {
			if m.lines[i].Quantity+1 > product.Stock {
				return ErrInsufficientStock
			}
			m.lines[i].Quantity++
			return nil
		}
	}

	m.lines = append(m.lines, Line{Product: product, Quantity: 1})
	return nil
}

// SetQuantity sets the line at index to exactly quantity. A quantity
// below 1 removes the line. A quantity above the line's stock is clamped
// to stock; clamped reports whether that happened so the UI can warn.
func (m *Manager) SetQuantity(index, quantity int) (clamped bool, err error) {
	if index < 0 || index >= len(m.lines) {
		return false, ErrBadIndex
	}

	if quantity < 1 {
		return false, m.RemoveItem(index)
	}

	if stock := m.lines[index].Product.Stock; quantity > stock {
		m.lines[index].Quantity = stock
		return true, nil
	}

	m.lines[index].Quantity = quantity
	return false, nil
}

// RemoveItem deletes the line at index. Lines after it shift down by one.
func (m *Manager) RemoveItem(index int) error {
	if index < 0 || index >= len(m.lines) {
		return ErrBadIndex
	}
	m.lines = append(m.lines[:index], m.lines[index+1:]...)
	return nil
}

// Total is the sum of all line subtotals; 0 for an empty cart.
func (m *Manager) Total() float64 {
	var total float64
	for _, l := range m.lines {
		total += l.Subtotal()
	}
	return total
}

// CheckoutPayload serializes the cart and customer data for the order
// service, preserving line order. It rejects an empty cart or a blank
// customer name before anything is sent over the wire.
func (m *Manager) CheckoutPayload(customer models.CheckoutCustomerRequest) (*models.CheckoutRequest, error) {
	if len(m.lines) == 0 {
		return nil, ErrEmptyCart
	}

	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, ErrCustomerName
	}
	customer.PaymentMethod = customer.PaymentMethod.Normalize()

	items := make([]models.CheckoutItemRequest, len(m.lines))
	for i, l := range m.lines {
		items[i] = models.CheckoutItemRequest{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		}
	}

	return &models.CheckoutRequest{Cart: items, Customer: customer}, nil
}

// Reset clears the cart. The catalog is kept.
func (m *Manager) Reset() {
	m.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (m *Manager) Lines() []Line {
	lines := make([]Line, len(m.lines))
	copy(lines, m.lines)
	return lines
}

func (m *Manager) Len() int {
	return len(m.lines)
}
