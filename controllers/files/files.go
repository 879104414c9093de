package fileControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultUploadDir = "/var/www/soul/uploads/products"
const publicPath = "/uploads/products"

// UploadDir resolves the image upload directory, overridable for deployments
// that mount the uploads volume elsewhere.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return defaultUploadDir
}

// ResolveURL maps a stored image reference to something a browser can load.
// External URLs pass through untouched; local storage keys get the public
// uploads path prefixed.
func ResolveURL(ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return fmt.Sprintf("%s/%s", publicPath, ref)
}

// ResolveURLs maps a slice of references in order.
func ResolveURLs(refs []string) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		urls = append(urls, ResolveURL(ref))
	}
	return urls
}

// POST /admin/files
// UploadImage stores a product image under the uploads dir and returns the
// storage key plus its public URL.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		saveDir := UploadDir()
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		storageKey := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, storageKey)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"storage_key": storageKey,
			"url":         ResolveURL(storageKey),
		})
	}
}

// GET /files/:key/url
func GetImageURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "storage key is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": ResolveURL(key)})
	}
}

// DELETE /admin/files/:key
func DeleteImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "storage key is required"})
			return
		}
		// External URLs are not ours to delete.
		if strings.HasPrefix(key, "http") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only local storage keys can be deleted"})
			return
		}
		if err := os.Remove(filepath.Join(UploadDir(), filepath.Base(key))); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
