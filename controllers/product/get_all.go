package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
)

var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"year":       true,
	"stock":      true,
}

// GetProducts lists products with storefront filters: text search, category,
// vehicle fitment (make/model/year), condition and price range.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.WithContext(c.Request.Context()).Model(&models.Product{}).Preload("Category")

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"name ILIKE ? OR description ILIKE ? OR make ILIKE ? OR model ILIKE ?",
				like, like, like, like,
			)
		}
		if makeFilter := c.Query("make"); makeFilter != "" {
			query = query.Where("make = ?", makeFilter)
		}
		if modelFilter := c.Query("model"); modelFilter != "" {
			query = query.Where("model = ?", modelFilter)
		}
		if yearStr := c.Query("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
				return
			}
			query = query.Where("year = ?", year)
		}
		if condition := c.Query("condition"); condition != "" {
			query = query.Where("condition = ?", condition)
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}
		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
