package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/autoparts-hub/storefront-api/controllers/product"
)

// SetupStorefrontRoutes registers the unauthenticated catalog endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	shop := r.Group("/shop")
	{
		shop.GET("/products", productControllers.GetProducts(db))
		shop.GET("/products/:id", productControllers.GetProductByID(db))
		shop.GET("/slug/:slug", productControllers.GetProductBySlug(db))
		shop.GET("/categories", productControllers.GetAllCategories(db))
	}
}
