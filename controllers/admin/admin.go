package adminController

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gitmibrahim/soul/auth"
	"github.com/gitmibrahim/soul/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CredentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateAdminRecord creates an admin with a bcrypt-hashed password.
// Fails with ErrDuplicateAdmin when the username is taken.
func CreateAdminRecord(db *gorm.DB, username, password string) (*models.Admin, error) {
	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, models.ErrDuplicateAdmin
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Authenticate checks the credentials against the stored hash. Returns nil
// admin on any mismatch; the caller never learns which part was wrong.
func Authenticate(db *gorm.DB, username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return &admin, nil
}

// EnsureDefaultAdmin seeds the first admin account on boot when the table is
// empty, from ADMIN_USERNAME / ADMIN_PASSWORD.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set; skipping default admin seed")
		return nil
	}

	if _, err := CreateAdminRecord(db, username, password); err != nil {
		return err
	}
	log.Printf("✅ Seeded default admin %q", username)
	return nil
}

// POST /auth/admin/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		admin, err := Authenticate(db, input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		if admin == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := auth.IssueAdminToken(admin.ID, admin.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"token":    token,
		})
	}
}

// POST /admin/admins
func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		admin, err := CreateAdminRecord(db, input.Username, input.Password)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateAdmin) {
				c.JSON(http.StatusConflict, gin.H{"error": "Admin already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": admin.ID, "username": admin.Username})
	}
}

// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}
