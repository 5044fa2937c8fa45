package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"pos-shop/config"
	"pos-shop/models"
)

type CheckoutController struct{}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{}
}

// @Summary Checkout
// @Description Place a point-of-sale order: validates the cart, decrements stock and records the order in one transaction
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Cart and customer data"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.CheckoutResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.CheckoutResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if len(req.Cart) == 0 {
		c.JSON(400, models.CheckoutResponse{Success: false, Message: "Cart is empty"})
		return
	}

	req.Customer.Name = strings.TrimSpace(req.Customer.Name)
	if req.Customer.Name == "" {
		c.JSON(400, models.CheckoutResponse{Success: false, Message: "Customer name is required"})
		return
	}

	req.Customer.PaymentMethod = req.Customer.PaymentMethod.Normalize()
	if !req.Customer.PaymentMethod.Valid() {
		c.JSON(400, models.CheckoutResponse{Success: false, Message: "Invalid payment method"})
		return
	}

	for _, item := range req.Cart {
		if item.Quantity < 1 {
			c.JSON(400, models.CheckoutResponse{Success: false, Message: "Item quantity must be positive"})
			return
		}
	}

	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	type lockedProduct struct {
		ID    int
		Name  string
		Price float64
		Cost  float64
	}

	var totalPrice float64
	locked := make([]lockedProduct, 0, len(req.Cart))

	for _, item := range req.Cart {
		var p lockedProduct
		var stock int
		err := tx.QueryRow(ctx,
			"SELECT id, name, price, cost, stock FROM products WHERE id=$1 FOR UPDATE",
			item.ProductID).Scan(&p.ID, &p.Name, &p.Price, &p.Cost, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(400, models.CheckoutResponse{
				Success: false,
				Message: fmt.Sprintf("Product %d not found", item.ProductID),
			})
			return
		}
		if err != nil {
			c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to load products"})
			return
		}

		if stock < item.Quantity {
			c.JSON(400, models.CheckoutResponse{
				Success: false,
				Message: fmt.Sprintf("Product %s out of stock or not found", p.Name),
			})
			return
		}

		totalPrice += p.Price * float64(item.Quantity)
		locked = append(locked, p)
	}

	now := time.Now()

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_date, total_price, payment_status, order_status,
		                     customer_name, customer_phone, customer_address,
		                     destination_branch, transport_company, payment_method)
		 VALUES ($1,$2,'Pending','Pending',$3,$4,$5,$6,$7,$8) RETURNING id`,
		now, totalPrice,
		req.Customer.Name, req.Customer.Phone, req.Customer.Address,
		req.Customer.Branch, req.Customer.Transport, string(req.Customer.PaymentMethod),
	).Scan(&orderID)
	if err != nil {
		c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to create order"})
		return
	}

	for i, item := range req.Cart {
		p := locked[i]

		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, price_at_purchase, cost_at_purchase)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			orderID, p.ID, p.Name, item.Quantity, p.Price, p.Cost)
		if err != nil {
			c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to create order items"})
			return
		}

		_, err = tx.Exec(ctx,
			"UPDATE products SET stock=stock-$1, updated_at=$2 WHERE id=$3",
			item.Quantity, now, p.ID)
		if err != nil {
			c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to update stock"})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, models.CheckoutResponse{Success: false, Message: "Failed to commit transaction"})
		return
	}

	invalidateCatalogCache()

	c.JSON(200, models.CheckoutResponse{Success: true, OrderID: orderID})
}
