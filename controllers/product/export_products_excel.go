package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("product_code ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"Product Code", "Name", "Description", "Category", "Price", "Stock", "Created At"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetString(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(p.ProductCode)
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Description)
			row.AddCell().SetString(p.Category.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Stock)
			row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to write Excel file: %v", err)})
			return
		}
	}
}
