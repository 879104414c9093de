package cartControllers

import (
	"errors"
	"time"

	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// getCartByGuestID returns the guest's cart with items preloaded, or nil
// when no cart exists yet.
func getCartByGuestID(db *gorm.DB, guestID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// calculateTotal rebuilds the cart total from scratch: current product price
// times quantity for every line, 0 for lines whose product no longer exists.
func calculateTotal(db *gorm.DB, items []models.CartItem) (float64, error) {
	var total float64
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, err
		}
		total += product.Price * float64(item.Quantity)
	}
	return total, nil
}

// saveCartTotal recomputes and persists the cart total from its current items.
func saveCartTotal(tx *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return err
	}
	total, err := calculateTotal(tx, items)
	if err != nil {
		return err
	}
	cart.Items = items
	cart.Total = total
	cart.UpdatedAt = time.Now()
	return tx.Model(cart).Select("Total", "UpdatedAt").Updates(cart).Error
}

// GetCart returns the guest's cart, or an empty non-persisted cart view when
// the guest has none. It never fails with a not-found error.
func GetCart(db *gorm.DB, guestID string) (models.Cart, error) {
	cart, err := getCartByGuestID(db, guestID)
	if err != nil {
		return models.Cart{}, err
	}
	if cart == nil {
		return models.Cart{GuestID: guestID, Items: []models.CartItem{}}, nil
	}
	return *cart, nil
}

// AddToCart lazily creates the guest's cart, then merges the product into it:
// an existing line has its quantity increased, otherwise a new line is
// appended. No upper bound is enforced against stock here; overselling is
// allowed and reconciled by the admin after checkout. Returns the cart id.
func AddToCart(db *gorm.DB, guestID string, productID uint, quantity int) (uint, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := getCartByGuestID(tx, guestID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &models.Cart{GuestID: guestID}
			if err := tx.Create(cart).Error; err != nil {
				return err
			}
		}
		cartID = cart.CartID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			newItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return saveCartTotal(tx, cart)
	})
	return cartID, err
}

// UpdateCartItem sets a line's quantity to the given value. The storefront
// routes zero-or-below deltas to RemoveFromCart instead; no floor is
// enforced here.
func UpdateCartItem(db *gorm.DB, guestID string, productID uint, quantity int) (uint, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := getCartByGuestID(tx, guestID)
		if err != nil {
			return err
		}
		if cart == nil {
			return models.ErrCartNotFound
		}
		cartID = cart.CartID

		if err := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Update("quantity", quantity).Error; err != nil {
			return err
		}

		return saveCartTotal(tx, cart)
	})
	return cartID, err
}

// RemoveFromCart drops the product's line from the cart. Idempotent when the
// line is already absent.
func RemoveFromCart(db *gorm.DB, guestID string, productID uint) (uint, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := getCartByGuestID(tx, guestID)
		if err != nil {
			return err
		}
		if cart == nil {
			return models.ErrCartNotFound
		}
		cartID = cart.CartID

		if err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return saveCartTotal(tx, cart)
	})
	return cartID, err
}

// ClearCart empties the cart and zeroes its total. The cart row itself is
// never hard-deleted.
func ClearCart(db *gorm.DB, guestID string) (uint, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := getCartByGuestID(tx, guestID)
		if err != nil {
			return err
		}
		if cart == nil {
			return models.ErrCartNotFound
		}
		cartID = cart.CartID

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.Total = 0
		cart.UpdatedAt = time.Now()
		return tx.Model(cart).Select("Total", "UpdatedAt").Updates(cart).Error
	})
	return cartID, err
}

// GetCartItemCount returns the sum of line quantities, 0 when the guest has
// no cart.
func GetCartItemCount(db *gorm.DB, guestID string) (int, error) {
	cart, err := getCartByGuestID(db, guestID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}
