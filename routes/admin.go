package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/gitmibrahim/soul/controllers/admin"
	fileControllers "github.com/gitmibrahim/soul/controllers/files"
	orderControllers "github.com/gitmibrahim/soul/controllers/order"
	productcontroller "github.com/gitmibrahim/soul/controllers/product"
	"github.com/gitmibrahim/soul/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.POST("/admins", adminController.CreateAdmin(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.POST("", orderControllers.CreateOrderHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
			orderAdmin.PUT("/:orderID/items/quantity", orderControllers.UpdateOrderItemQuantityHandler(db))
			orderAdmin.DELETE("/:orderID/items", orderControllers.RemoveOrderItemHandler(db))
			orderAdmin.POST("/:orderID/items/confirm", orderControllers.ConfirmOrderItemHandler(db))
			orderAdmin.PUT("/:orderID/customer-info", orderControllers.UpdateCustomerInfoHandler(db))
		}

		// ─────────── File Storage ───────────
		fileAdmin := adminGroup.Group("/files")
		{
			fileAdmin.POST("", fileControllers.UploadImage())
			fileAdmin.DELETE("/:key", fileControllers.DeleteImage())
		}
	}
}
