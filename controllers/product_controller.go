package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"pos-shop/config"
	"pos-shop/models"
	"pos-shop/repositories"
	"pos-shop/utils"
)

type ProductController struct {
	productRepo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		productRepo: repositories.NewProductRepository(),
	}
}

const catalogCacheKey = "catalog_products"

func invalidateCatalogCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), catalogCacheKey)
}

// @Summary Get product catalog
// @Description Get the full product list for the POS screen
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.CatalogProduct
// @Router /api/products [get]
func (ctrl *ProductController) GetCatalog(c *gin.Context) {
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.productRepo.GetAll()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	catalog := make([]models.CatalogProduct, 0, len(products))
	for i := range products {
		catalog = append(catalog, products[i].Catalog())
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(catalog); err == nil {
			config.RedisClient.Set(ctx, catalogCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, catalog)
}

// @Summary Get product by ID
// @Description Get a single product including cost (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productRepo.GetByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Create a new product with an optional image (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param code formData string false "Product code"
// @Param name formData string true "Name"
// @Param price formData number true "Price"
// @Param cost formData number false "Cost"
// @Param stock formData int false "Stock"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Price < 0 || req.Cost < 0 || req.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Price, cost and stock must not be negative"})
		return
	}

	imageFile := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		path, err := utils.UploadFile(c, fileHeader, "product_images")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		imageFile = path
	}

	now := time.Now()
	var id int
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO products (code, name, price, cost, stock, image_file, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$7) RETURNING id",
		req.Code, req.Name, req.Price, req.Cost, req.Stock, imageFile, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateCatalogCache()

	c.JSON(201, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    gin.H{"id": id, "code": req.Code, "name": req.Name, "price": req.Price, "stock": req.Stock, "image_file": imageFile},
	})
}

// @Summary Update product
// @Description Update product fields and optionally replace its image (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productRepo.GetByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if product.Price < 0 || product.Cost < 0 || product.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Price, cost and stock must not be negative"})
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		path, err := utils.UploadFile(c, fileHeader, "product_images")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		utils.DeleteFile(product.ImageFile)
		product.ImageFile = path
	}

	_, err = config.DB.Exec(context.Background(),
		"UPDATE products SET code=$1, name=$2, price=$3, cost=$4, stock=$5, image_file=$6, updated_at=$7 WHERE id=$8",
		product.Code, product.Name, product.Price, product.Cost, product.Stock, product.ImageFile, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateCatalogCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load product"})
		return
	}

	_, err = config.DB.Exec(context.Background(), "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	utils.DeleteFile(product.ImageFile)
	invalidateCatalogCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully", "data": gin.H{"id": id}})
}
