package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// PUT /admin/products/:id
// UpdateProduct replaces the editable fields of a product. The product code
// is assigned once at creation and never touched here.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			product.Name = input.Name
			product.Description = input.Description
			product.Price = input.Price
			product.CategoryID = input.CategoryID
			product.Stock = input.Stock
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			// Replace the image set wholesale; the admin UI always sends
			// the full list.
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for _, ref := range input.ImageURLs {
				if err := tx.Create(&models.ProductImage{ProductID: product.ID, Ref: ref}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := db.Preload("Images").First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
			return
		}
		c.JSON(http.StatusOK, NewProductResponse(product))
	}
}
