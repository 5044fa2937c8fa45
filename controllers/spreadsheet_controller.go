package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"pos-shop/models"
	"pos-shop/repositories"
)

// SpreadsheetController handles the bulk product import and the
// product/order exports the back office uses for stocktaking.
type SpreadsheetController struct {
	productRepo *repositories.ProductRepository
	orderRepo   *repositories.OrderRepository
}

func NewSpreadsheetController() *SpreadsheetController {
	return &SpreadsheetController{
		productRepo: repositories.NewProductRepository(),
		orderRepo:   repositories.NewOrderRepository(),
	}
}

var productSheetHeader = []string{"Code", "Name", "Cost", "Price", "Stock"}

// @Summary Import products
// @Description Upload an xlsx sheet (Code, Name, Cost, Price, Stock); rows upsert by code (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx file"
// @Success 200 {object} models.Response
// @Router /admin/products/import [post]
func (ctrl *SpreadsheetController) ImportProducts(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	sheet, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid spreadsheet file"})
		return
	}
	defer sheet.Close()

	rows, err := sheet.GetRows(sheet.GetSheetName(0))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to read spreadsheet rows"})
		return
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}

		cell := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}

		name := cell(1)
		if name == "" {
			skipped++
			continue
		}

		product := models.Product{
			Code:  cell(0),
			Name:  name,
			Cost:  parseFloatCell(cell(2)),
			Price: parseFloatCell(cell(3)),
			Stock: int(parseFloatCell(cell(4))),
		}

		if err := ctrl.productRepo.UpsertByCode(&product); err != nil {
			skipped++
			continue
		}
		imported++
	}

	invalidateCatalogCache()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products imported",
		"data":    gin.H{"imported": imported, "skipped": skipped},
	})
}

// @Summary Export products
// @Description Download the product list as an xlsx sheet (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /admin/products/export [get]
func (ctrl *SpreadsheetController) ExportProducts(c *gin.Context) {
	products, err := ctrl.productRepo.GetAll()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	sheet := excelize.NewFile()
	defer sheet.Close()

	sheetName := sheet.GetSheetName(0)
	for col, title := range productSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		sheet.SetCellValue(sheetName, cell, title)
	}

	for i, p := range products {
		row := i + 2
		sheet.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.Code)
		sheet.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Name)
		sheet.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Cost)
		sheet.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Price)
		sheet.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Stock)
	}

	writeSheet(c, sheet, "products.xlsx")
}

// @Summary Export orders
// @Description Download the order list as an xlsx sheet (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /admin/orders/export [get]
func (ctrl *SpreadsheetController) ExportOrders(c *gin.Context) {
	orders, err := ctrl.orderRepo.GetAll()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}

	sheet := excelize.NewFile()
	defer sheet.Close()

	sheetName := sheet.GetSheetName(0)
	header := []string{"Order ID", "Date", "Customer", "Total Price", "Payment Status", "Order Status"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		sheet.SetCellValue(sheetName, cell, title)
	}

	for i, o := range orders {
		row := i + 2
		sheet.SetCellValue(sheetName, fmt.Sprintf("A%d", row), o.ID)
		sheet.SetCellValue(sheetName, fmt.Sprintf("B%d", row), o.OrderDate.Format("2006-01-02 15:04:05"))
		sheet.SetCellValue(sheetName, fmt.Sprintf("C%d", row), o.CustomerName)
		sheet.SetCellValue(sheetName, fmt.Sprintf("D%d", row), o.TotalPrice)
		sheet.SetCellValue(sheetName, fmt.Sprintf("E%d", row), o.PaymentStatus)
		sheet.SetCellValue(sheetName, fmt.Sprintf("F%d", row), o.OrderStatus)
	}

	writeSheet(c, sheet, "orders.xlsx")
}

func parseFloatCell(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	var v float64
	fmt.Sscanf(s, "%f", &v)
	return v
}

func writeSheet(c *gin.Context, sheet *excelize.File, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := sheet.Write(c.Writer); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to write spreadsheet"})
	}
}
