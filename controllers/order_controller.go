package controllers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pos-shop/config"
	"pos-shop/models"
	"pos-shop/repositories"
)

type OrderController struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderRepo: repositories.NewOrderRepository(),
	}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

var allowedOrderStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusPaid:      true,
	models.StatusShipped:   true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// @Summary Get all orders
// @Description Get all orders with pagination, newest first (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by order status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := ctrl.getPaginationParams(c, 10)
	status := c.Query("status")

	ctx := context.Background()

	var total int
	countQuery := "SELECT COUNT(*) FROM orders"
	countArgs := []interface{}{}
	if status != "" && status != "All" {
		countQuery += " WHERE order_status = $1"
		countArgs = append(countArgs, status)
	}
	if err := config.DB.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := `SELECT id, order_date, total_price, payment_status, order_status,
	                 COALESCE(customer_name, ''), COALESCE(customer_phone, ''), COALESCE(payment_method, '')
	          FROM orders`
	args := []interface{}{}
	if status != "" && status != "All" {
		query += " WHERE order_status = $1"
		args = append(args, status)
	}
	query += " ORDER BY order_date DESC LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}
	defer rows.Close()

	orders := []gin.H{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.TotalPrice, &o.PaymentStatus, &o.OrderStatus,
			&o.CustomerName, &o.CustomerPhone, &o.PaymentMethod); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read orders"})
			return
		}
		orders = append(orders, gin.H{
			"id": o.ID, "order_date": o.OrderDate, "total_price": o.TotalPrice,
			"payment_status": o.PaymentStatus, "order_status": o.OrderStatus,
			"customer_name": o.CustomerName, "customer_phone": o.CustomerPhone,
			"payment_method": o.PaymentMethod,
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// @Summary Get order by ID
// @Description Get one order with its line items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	ctx := context.Background()

	var o models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, order_date, total_price, payment_status, order_status,
		        COALESCE(customer_name, ''), COALESCE(customer_phone, ''), COALESCE(customer_address, ''),
		        COALESCE(destination_branch, ''), COALESCE(transport_company, ''), COALESCE(payment_method, '')
		 FROM orders WHERE id=$1`, id).Scan(
		&o.ID, &o.OrderDate, &o.TotalPrice, &o.PaymentStatus, &o.OrderStatus,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.DestinationBranch, &o.TransportCompany, &o.PaymentMethod)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, price_at_purchase, cost_at_purchase
		 FROM order_items WHERE order_id=$1 ORDER BY id`, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order items"})
		return
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.PriceAtPurchase, &item.CostAtPurchase); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read order items"})
			return
		}
		o.Items = append(o.Items, item)
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": o})
}

// @Summary Update order status
// @Description Update fulfilment status of an order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	ctrl.updateStatusColumn(c, "order_status")
}

// @Summary Update payment status
// @Description Update payment status of an order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/payment [patch]
func (ctrl *OrderController) UpdatePaymentStatus(c *gin.Context) {
	ctrl.updateStatusColumn(c, "payment_status")
}

func (ctrl *OrderController) updateStatusColumn(c *gin.Context, column string) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	req.Status = strings.TrimSpace(req.Status)
	if !allowedOrderStatuses[req.Status] {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	ctx := context.Background()

	var exists int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id=$1", id).Scan(&exists); err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	_, err := config.DB.Exec(ctx, "UPDATE orders SET "+column+"=$1 WHERE id=$2", req.Status, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"data":    gin.H{"id": id, column: req.Status},
	})
}

// @Summary Dashboard stats
// @Description Total paid sales, cost of goods sold and gross profit (Admin)
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.orderRepo.DashboardStats()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load dashboard stats"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Dashboard stats retrieved", "data": stats})
}
