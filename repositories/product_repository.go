package repositories

import (
	"context"
	"time"

	"pos-shop/config"
	"pos-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, COALESCE(code, ''), name, price, cost, stock, COALESCE(image_file, ''), created_at, updated_at
	          FROM products ORDER BY id`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Cost, &p.Stock, &p.ImageFile, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	query := `SELECT id, COALESCE(code, ''), name, price, cost, stock, COALESCE(image_file, ''), created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.Price, &p.Cost, &p.Stock, &p.ImageFile, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertByCode inserts a product or, when the code already exists,
// overwrites name, cost, price and stock. Used by the spreadsheet import.
func (r *ProductRepository) UpsertByCode(p *models.Product) error {
	query := `
		INSERT INTO products (code, name, price, cost, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, price = EXCLUDED.price,
		    cost = EXCLUDED.cost, stock = EXCLUDED.stock, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	return config.DB.QueryRow(context.Background(), query,
		p.Code, p.Name, p.Price, p.Cost, p.Stock, time.Now(),
	).Scan(&p.ID)
}
