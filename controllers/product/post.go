package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	ImageURLs   []string `json:"image_urls"`
	Stock       int      `json:"stock"`
}

const codeRetries = 3

// CreateProductRecord inserts a new product with an auto-assigned product
// code. The scan-then-assign sequence runs inside the create transaction;
// the unique index on product_code turns a concurrent duplicate into a
// retryable failure instead of two products sharing a code.
func CreateProductRecord(db *gorm.DB, input ProductInput) (*models.Product, error) {
	var product *models.Product
	var err error
	for attempt := 0; attempt < codeRetries; attempt++ {
		product, err = tryCreateProduct(db, input)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return product, err
		}
	}
	return nil, err
}

func tryCreateProduct(db *gorm.DB, input ProductInput) (*models.Product, error) {
	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		code, err := NextProductCode(tx)
		if err != nil {
			return err
		}

		images := make([]models.ProductImage, 0, len(input.ImageURLs))
		for _, ref := range input.ImageURLs {
			images = append(images, models.ProductImage{Ref: ref})
		}

		product = models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			CategoryID:  input.CategoryID,
			Images:      images,
			Stock:       input.Stock,
			ProductCode: code,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		product, err := CreateProductRecord(db, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, NewProductResponse(*product))
	}
}
