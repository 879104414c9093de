package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	productcontroller "github.com/gitmibrahim/soul/controllers/product"
	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemWithProduct joins a cart line with its live product (nil when the
// product was deleted after being added).
type CartItemWithProduct struct {
	models.CartItem
	Product *productcontroller.ProductResponse `json:"product"`
}

type CartWithProducts struct {
	models.Cart
	Items []CartItemWithProduct `json:"items"`
}

// GetCartWithProducts returns the cart with each line's current product and
// resolved image URLs, for the storefront cart page.
func GetCartWithProducts(db *gorm.DB, guestID string) (CartWithProducts, error) {
	cart, err := GetCart(db, guestID)
	if err != nil {
		return CartWithProducts{}, err
	}

	items := make([]CartItemWithProduct, 0, len(cart.Items))
	for _, item := range cart.Items {
		joined := CartItemWithProduct{CartItem: item}
		var product models.Product
		err := db.Preload("Images").First(&product, item.ProductID).Error
		switch {
		case err == nil:
			resp := productcontroller.NewProductResponse(product)
			joined.Product = &resp
		case errors.Is(err, gorm.ErrRecordNotFound):
			// keep the line, product stays nil
		default:
			return CartWithProducts{}, err
		}
		items = append(items, joined)
	}

	cart.Items = nil
	return CartWithProducts{Cart: cart, Items: items}, nil
}

func requireGuestID(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

func paramProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return uint(id), true
}

// GET /cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		cart, err := GetCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart/details
func GetGuestCartWithProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		cart, err := GetCartWithProducts(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart/count
func GetGuestCartItemCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		count, err := GetCartItemCount(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// POST /cart/items
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate the product exists before adding its id to the cart.
		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cartID, err := AddToCart(db, guestID, input.ProductID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_id": cartID})
	}
}

// PUT /cart/items/:product_id
func UpdateGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		productID, ok := paramProductID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cartID, err := UpdateCartItem(db, guestID, productID, input.Quantity)
		if err != nil {
			if errors.Is(err, models.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_id": cartID})
	}
}

// DELETE /cart/items/:product_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		productID, ok := paramProductID(c)
		if !ok {
			return
		}

		cartID, err := RemoveFromCart(db, guestID, productID)
		if err != nil {
			if errors.Is(err, models.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_id": cartID})
	}
}

// DELETE /cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		cartID, err := ClearCart(db, guestID)
		if err != nil {
			if errors.Is(err, models.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_id": cartID, "message": "Guest cart cleared"})
	}
}
