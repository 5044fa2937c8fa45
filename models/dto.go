package models

import "pos-shop/models/enum"

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CheckoutItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CheckoutCustomerRequest struct {
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	Branch        string             `json:"branch"`
	Transport     string             `json:"transport"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
}

type CheckoutRequest struct {
	Cart     []CheckoutItemRequest   `json:"cart"`
	Customer CheckoutCustomerRequest `json:"customer"`
}

// CheckoutResponse mirrors the wire contract the POS widget consumes:
// order_id is set only when success is true, message only on failure.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID int    `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

type CreateProductRequest struct {
	Code  string  `json:"code" form:"code"`
	Name  string  `json:"name" form:"name" binding:"required"`
	Price float64 `json:"price" form:"price" binding:"required"`
	Cost  float64 `json:"cost" form:"cost"`
	Stock int     `json:"stock" form:"stock"`
}

type UpdateProductRequest struct {
	Code  *string  `json:"code" form:"code"`
	Name  *string  `json:"name" form:"name"`
	Price *float64 `json:"price" form:"price"`
	Cost  *float64 `json:"cost" form:"cost"`
	Stock *int     `json:"stock" form:"stock"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type DashboardStats struct {
	TotalSales  float64 `json:"total_sales"`
	TotalCost   float64 `json:"total_cost"`
	GrossProfit float64 `json:"gross_profit"`
	OrderCount  int     `json:"order_count"`
}
