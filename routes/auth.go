package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/auth"
	adminController "github.com/gitmibrahim/soul/controllers/admin"
	"github.com/gitmibrahim/soul/middleware"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession())
		authGroup.POST("/admin/login", adminController.Login(db))
		authGroup.GET("/admin/me", middleware.ValidateAdminToken, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"admin_id": c.MustGet("admin_id"),
				"username": c.MustGet("username"),
			})
		})
	}
}
