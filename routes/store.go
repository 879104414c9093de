package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/gitmibrahim/soul/controllers/cart"
	fileControllers "github.com/gitmibrahim/soul/controllers/files"
	orderControllers "github.com/gitmibrahim/soul/controllers/order"
	productcontroller "github.com/gitmibrahim/soul/controllers/product"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public storefront endpoints. Cart routes
// identify the shopper by the guest_id query param.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/code/:code", productcontroller.GetProductByCode(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db))
		categories.GET("/:id/products", productcontroller.GetProductsByCategory(db))
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetGuestCart(db))
		cart.GET("/details", cartControllers.GetGuestCartWithProducts(db))
		cart.GET("/count", cartControllers.GetGuestCartItemCount(db))
		cart.POST("/items", cartControllers.AddGuestCartItem(db))
		cart.PUT("/items/:product_id", cartControllers.UpdateGuestCartItem(db))
		cart.DELETE("/items/:product_id", cartControllers.DeleteGuestCartItem(db))
		cart.DELETE("", cartControllers.ClearGuestCart(db))
		cart.POST("/place-order", cartControllers.PlaceGuestOrder(db))
	}

	orders := r.Group("/orders")
	{
		orders.GET("/session/:guestID", orderControllers.GetSessionOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}

	r.GET("/files/:key/url", fileControllers.GetImageURL())
}
