package cartControllers

import (
	"errors"
	"log"
	"time"

	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// PlaceOrder drains the guest's cart into a new pending order. Line prices,
// names and codes are snapshotted here and frozen for the order's lifetime.
// Cart lines whose product has since been deleted are skipped with a warning
// so a stale catalog can never block checkout. Stock is decremented per line
// only when enough is available; short lines are left at full stock for the
// admin to confirm manually over WhatsApp. Returns the new order's id.
func PlaceOrder(db *gorm.DB, guestID, whatsappMessage string, customerInfo *models.CustomerInfo) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := getCartByGuestID(tx, guestID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return models.ErrEmptyCart
		}

		var orderItems []models.OrderItem
		var total float64
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("⚠️ Skipping cart line for deleted product %d (guest %s)", item.ProductID, guestID)
					continue
				}
				return err
			}
			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				Quantity:    item.Quantity,
				Price:       product.Price,
				ProductName: product.Name,
				ProductCode: product.ProductCode,
			})
		}

		order := models.Order{
			GuestID:         guestID,
			Items:           orderItems,
			Total:           total,
			Status:          models.OrderStatusPending,
			WhatsAppMessage: whatsappMessage,
		}
		if customerInfo != nil {
			order.CustomerInfo = *customerInfo
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		// Conditional decrement: only lines with sufficient stock consume it.
		// Short lines keep the product untouched until the admin confirms.
		for _, item := range orderItems {
			if err := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.Total = 0
		cart.UpdatedAt = time.Now()
		return tx.Model(cart).Select("Total", "UpdatedAt").Updates(cart).Error
	})
	return orderID, err
}
