package models

import "time"

type Product struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost"`
	Stock     int       `json:"stock"`
	ImageFile string    `json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogProduct is the public shape served by GET /api/products.
// Cost is back-office only and never leaves the admin endpoints.
type CatalogProduct struct {
	ID        int     `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	ImageFile string  `json:"image_file"`
}

func (p *Product) Catalog() CatalogProduct {
	return CatalogProduct{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		ImageFile: p.ImageFile,
	}
}
