package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	GuestID         string               `json:"guest_id" binding:"required"`
	Items           []OrderItemSnapshot  `json:"items" binding:"required,min=1,dive"`
	WhatsAppMessage string               `json:"whatsapp_message"`
	CustomerInfo    *models.CustomerInfo `json:"customer_info"`
}

type OrderItemSnapshot struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name" binding:"required"`
	ProductCode string  `json:"product_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateItemQuantityRequest struct {
	ProductID   uint `json:"product_id" binding:"required"`
	NewQuantity int  `json:"new_quantity" binding:"required,min=1"`
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func paramOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
		return 0, false
	}
	return uint(id), true
}

func respondOrderErr(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in order"})
	case errors.Is(err, models.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// -------- Handlers --------

// GET /admin/orders?status=pending
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListOrders(db, c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		order, err := GetOrderRecord(db, orderID)
		if err != nil {
			respondOrderErr(c, err, "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/session/:guestID
func GetSessionOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Param("guestID")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guestID is required"})
			return
		}
		orders, err := GetOrdersBySession(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /admin/orders
// Direct creation path with caller-supplied snapshots.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, s := range req.Items {
			items = append(items, models.OrderItem{
				ProductID:   s.ProductID,
				Quantity:    s.Quantity,
				Price:       s.Price,
				ProductName: s.ProductName,
				ProductCode: s.ProductCode,
			})
		}

		orderID, err := CreateOrder(db, req.GuestID, items, req.WhatsAppMessage, req.CustomerInfo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		if order, err := GetOrderRecord(db, orderID); err == nil {
			BroadcastOrder(*order)
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateOrderStatusRecord(db, orderID, req.Status); err != nil {
			respondOrderErr(c, err, "Failed to update order status")
			return
		}
		broadcastOrderByID(db, orderID)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// POST /admin/orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		if err := CancelOrder(db, orderID); err != nil {
			respondOrderErr(c, err, "Failed to cancel order")
			return
		}
		broadcastOrderByID(db, orderID)
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}

// PUT /admin/orders/:orderID/items/quantity
func UpdateOrderItemQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var req UpdateItemQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateOrderItemQuantity(db, orderID, req.ProductID, req.NewQuantity); err != nil {
			respondOrderErr(c, err, "Failed to update item quantity")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item quantity updated"})
	}
}

// DELETE /admin/orders/:orderID/items
func RemoveOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var req OrderItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := RemoveOrderItem(db, orderID, req.ProductID); err != nil {
			respondOrderErr(c, err, "Failed to remove item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// POST /admin/orders/:orderID/items/confirm
func ConfirmOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var req OrderItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ConfirmOrderItem(db, orderID, req.ProductID); err != nil {
			respondOrderErr(c, err, "Failed to confirm item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item confirmed"})
	}
}

// PUT /admin/orders/:orderID/customer-info
func UpdateCustomerInfoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := paramOrderID(c)
		if !ok {
			return
		}
		var info models.CustomerInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateCustomerInfoRecord(db, orderID, info); err != nil {
			respondOrderErr(c, err, "Failed to update customer info")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer info updated"})
	}
}

func broadcastOrderByID(db *gorm.DB, orderID uint) {
	if order, err := GetOrderRecord(db, orderID); err == nil {
		BroadcastOrder(*order)
	}
}
