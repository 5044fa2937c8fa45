package models

import (
	"time"

	"pos-shop/models/enum"
)

type Order struct {
	ID                int                `json:"id"`
	OrderDate         time.Time          `json:"order_date"`
	TotalPrice        float64            `json:"total_price"`
	PaymentStatus     string             `json:"payment_status"`
	OrderStatus       string             `json:"order_status"`
	CustomerName      string             `json:"customer_name"`
	CustomerPhone     string             `json:"customer_phone"`
	CustomerAddress   string             `json:"customer_address"`
	DestinationBranch string             `json:"destination_branch"`
	TransportCompany  string             `json:"transport_company"`
	PaymentMethod     enum.PaymentMethod `json:"payment_method"`
	Items             []OrderItem        `json:"items,omitempty"`
}

type OrderItem struct {
	ID              int     `json:"id"`
	OrderID         int     `json:"order_id"`
	ProductID       int     `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	CostAtPurchase  float64 `json:"cost_at_purchase"`
}

const (
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusShipped   = "Shipped"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)
