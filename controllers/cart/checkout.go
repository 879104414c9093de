package cartControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/gitmibrahim/soul/controllers/order"
	"github.com/gitmibrahim/soul/models"
	"github.com/gitmibrahim/soul/whatsapp"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	CustomerInfo *models.CustomerInfo `json:"customer_info"`
}

// POST /cart/place-order
// Checkout: snapshots the cart into a pending order, then hands the shopper
// off to WhatsApp with a pre-filled message carrying the new order's number.
func PlaceGuestOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var req PlaceOrderRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		details, err := GetCartWithProducts(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		lines := make([]whatsapp.Line, 0, len(details.Items))
		for _, item := range details.Items {
			if item.Product == nil {
				continue
			}
			lines = append(lines, whatsapp.Line{
				Name:      item.Product.Name,
				Code:      item.Product.ProductCode,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
				Available: item.Product.Stock,
			})
		}

		// Persist the order with the ref-less message; the returned link
		// carries the final message including the order number.
		message := whatsapp.BuildOrderMessage("", lines, details.Total)
		orderID, err := PlaceOrder(db, guestID, message, req.CustomerInfo)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		ref := strconv.FormatUint(uint64(orderID), 10)
		finalMessage := whatsapp.BuildOrderMessage(ref, lines, details.Total)
		link := whatsapp.OrderLink(os.Getenv("WHATSAPP_NUMBER"), finalMessage)

		if order, err := orderControllers.GetOrderRecord(db, orderID); err == nil {
			orderControllers.BroadcastOrder(*order)
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id":     orderID,
			"whatsapp_url": link,
		})
	}
}
