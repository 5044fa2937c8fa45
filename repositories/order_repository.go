package repositories

import (
	"context"

	"pos-shop/config"
	"pos-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT id, order_date, total_price, payment_status, order_status,
	                 COALESCE(customer_name, ''), COALESCE(customer_phone, ''), COALESCE(customer_address, ''),
	                 COALESCE(destination_branch, ''), COALESCE(transport_company, ''), COALESCE(payment_method, '')
	          FROM orders ORDER BY order_date DESC`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.TotalPrice, &o.PaymentStatus, &o.OrderStatus,
			&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
			&o.DestinationBranch, &o.TransportCompany, &o.PaymentMethod); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// DashboardStats aggregates paid sales, cost of goods sold and gross
// profit the way the storefront dashboard reports them.
func (r *OrderRepository) DashboardStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := config.DB.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM orders WHERE payment_status = 'Paid'`,
	).Scan(&stats.TotalSales, &stats.OrderCount)
	if err != nil {
		return nil, err
	}

	err = config.DB.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(oi.cost_at_purchase * oi.quantity), 0)
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE o.payment_status = 'Paid'`,
	).Scan(&stats.TotalCost)
	if err != nil {
		return nil, err
	}

	stats.GrossProfit = stats.TotalSales - stats.TotalCost
	return stats, nil
}
