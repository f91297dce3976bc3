package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
)

// UploadProductImage stores an image for an existing product and records its
// public URL.
func UploadProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		saveDir := os.Getenv("UPLOADS_DIR")
		if saveDir == "" {
			saveDir = "./uploads"
		}
		saveDir = filepath.Join(saveDir, "products")
		if err := os.MkdirAll(saveDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
			return
		}

		filename := fmt.Sprintf("%d_%s", product.ID, strings.ReplaceAll(file.Filename, " ", "_"))
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		product.Image = "/uploads/products/" + filename
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product image"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
