package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", models.ErrInvalidStatus
	}
}

// canTransition encodes the order lifecycle: pending → confirmed,
// pending → cancelled, confirmed → cancelled. Nothing leaves cancelled and
// nothing re-enters pending. Setting the current status again is a no-op,
// not a transition.
func canTransition(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusConfirmed || to == models.OrderStatusCancelled
	case models.OrderStatusConfirmed:
		return to == models.OrderStatusCancelled
	default:
		return false
	}
}

func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// -------- Core Logic --------

// ListOrders returns all orders newest first, optionally filtered to one
// status.
func ListOrders(db *gorm.DB, status string) ([]models.Order, error) {
	query := db.Preload("Items").Order("created_at DESC")
	if status != "" {
		mapped, err := mapOrderStatus(status)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", mapped)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderRecord is a point lookup by order id.
func GetOrderRecord(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrdersBySession returns the guest's orders, newest first.
func GetOrdersBySession(db *gorm.DB, guestID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").Where("guest_id = ?", guestID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder is the direct creation path taking pre-built item snapshots.
// Stock follows the same policy as cart-driven checkout: a line consumes
// stock only when enough is available, otherwise the product is left
// untouched for manual confirmation.
func CreateOrder(db *gorm.DB, guestID string, items []models.OrderItem, whatsappMessage string, customerInfo *models.CustomerInfo) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			GuestID:         guestID,
			Items:           items,
			Total:           orderTotal(items),
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

		for _, item := range items {
			if err := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return orderID, err
}

// UpdateOrderStatusRecord applies a status change after validating it
// against the lifecycle. Cancellation is routed through CancelOrder so the
// stock restoration can never be skipped.
func UpdateOrderStatusRecord(db *gorm.DB, orderID uint, status string) error {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return err
	}
	if newStatus == models.OrderStatusCancelled {
		return CancelOrder(db, orderID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		order, err := GetOrderRecord(tx, orderID)
		if err != nil {
			return err
		}
		if !canTransition(order.Status, newStatus) {
			return models.ErrInvalidStatus
		}
		if order.Status == newStatus {
			return nil
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
	})
}

// CancelOrder restores every line's stock and marks the order cancelled.
// No-op when the order does not exist or is already cancelled, so a double
// cancel never restores stock twice.
func CancelOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		order, err := GetOrderRecord(tx, orderID)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				return nil
			}
			return err
		}
		if order.Status == models.OrderStatusCancelled {
			return nil
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":     models.OrderStatusCancelled,
			"updated_at": time.Now(),
		}).Error
	})
}

// UpdateOrderItemQuantity sets a line's quantity and moves the difference
// through the product's stock: raising the quantity consumes stock, lowering
// it releases stock. The adjustment is deliberately unclamped; repeated
// admin edits can drive stock negative and the admin reconciles.
func UpdateOrderItemQuantity(db *gorm.DB, orderID, productID uint, newQuantity int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		order, err := GetOrderRecord(tx, orderID)
		if err != nil {
			return err
		}

		var target *models.OrderItem
		for i := range order.Items {
			if order.Items[i].ProductID == productID {
				target = &order.Items[i]
				break
			}
		}
		if target == nil {
			return models.ErrItemNotFound
		}

		diff := newQuantity - target.Quantity
		if err := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			Update("stock", gorm.Expr("stock - ?", diff)).Error; err != nil {
			return err
		}

		target.Quantity = newQuantity
		if err := tx.Model(target).Update("quantity", newQuantity).Error; err != nil {
			return err
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"total":      orderTotal(order.Items),
			"updated_at": time.Now(),
		}).Error
	})
}

// RemoveOrderItem restores the line's full quantity to stock and drops the
// line. Removing the last line cancels the order and zeroes its total.
func RemoveOrderItem(db *gorm.DB, orderID, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		order, err := GetOrderRecord(tx, orderID)
		if err != nil {
			return err
		}

		var target *models.OrderItem
		remaining := make([]models.OrderItem, 0, len(order.Items))
		for i := range order.Items {
			if order.Items[i].ProductID == productID {
				target = &order.Items[i]
				continue
			}
			remaining = append(remaining, order.Items[i])
		}
		if target == nil {
			return models.ErrItemNotFound
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			Update("stock", gorm.Expr("stock + ?", target.Quantity)).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.OrderItem{}, target.ID).Error; err != nil {
			return err
		}

		// Model must be keyed by id only: updating through the loaded order
		// would autosave its stale Items association and resurrect the
		// deleted line.
		if len(remaining) == 0 {
			return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
				"status":     models.OrderStatusCancelled,
				"total":      0,
				"updated_at": time.Now(),
			}).Error
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"total":      orderTotal(remaining),
			"updated_at": time.Now(),
		}).Error
	})
}

// ConfirmOrderItem flags an oversold line as acknowledged by the admin.
// Quantity, stock and total are untouched.
func ConfirmOrderItem(db *gorm.DB, orderID, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		order, err := GetOrderRecord(tx, orderID)
		if err != nil {
			return err
		}

		for i := range order.Items {
			if order.Items[i].ProductID == productID {
				if err := tx.Model(&order.Items[i]).Update("confirmed", true).Error; err != nil {
					return err
				}
				return tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("updated_at", time.Now()).Error
			}
		}
		return models.ErrItemNotFound
	})
}

// UpdateCustomerInfoRecord attaches or replaces the order's shipping
// contact details.
func UpdateCustomerInfoRecord(db *gorm.DB, orderID uint, info models.CustomerInfo) error {
	order, err := GetOrderRecord(db, orderID)
	if err != nil {
		return err
	}
	return db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
		"customer_name":    info.Name,
		"customer_phone":   info.Phone,
		"customer_address": info.Address,
		"updated_at":       time.Now(),
	}).Error
}
