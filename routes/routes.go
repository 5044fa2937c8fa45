package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-shop/controllers"
	"pos-shop/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	checkoutCtrl := controllers.NewCheckoutController()
	orderCtrl := controllers.NewOrderController()
	sheetCtrl := controllers.NewSpreadsheetController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/api/products", productCtrl.GetCatalog)
	router.POST("/api/checkout", checkoutCtrl.Checkout)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.GET("/products/:id", productCtrl.GetProductByID)
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/import", sheetCtrl.ImportProducts)
		admin.GET("/products/export", sheetCtrl.ExportProducts)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/export", sheetCtrl.ExportOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.PATCH("/orders/:id/payment", orderCtrl.UpdatePaymentStatus)
	}

	router.Static("/uploads", "./uploads")
}
