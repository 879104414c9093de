package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// GET /products
// GetProducts lists the catalog newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("Images").
			Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, NewProductResponses(products))
	}
}

// GET /categories/:id/products
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cid, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var products []models.Product
		if err := db.Preload("Images").
			Where("category_id = ?", uint(cid)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, NewProductResponses(products))
	}
}

// SearchProductRecords matches the term against name, description and
// product code, case-insensitively. An empty term returns the whole catalog.
func SearchProductRecords(db *gorm.DB, term string) ([]models.Product, error) {
	query := db.Preload("Category").Preload("Images").Order("created_at DESC")
	if term != "" {
		like := "%" + term + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(product_code) LIKE LOWER(?)",
			like, like, like,
		)
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GET /products/search?q=term
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := SearchProductRecords(db, c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}
		c.JSON(http.StatusOK, NewProductResponses(products))
	}
}
