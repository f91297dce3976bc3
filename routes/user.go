package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/cart"
	cartControllers "github.com/autoparts-hub/storefront-api/controllers/cart"
	orderControllers "github.com/autoparts-hub/storefront-api/controllers/order"
	userControllers "github.com/autoparts-hub/storefront-api/controllers/user"
	"github.com/autoparts-hub/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetProfile(db))
		userGroup.PUT("", userControllers.UpdateProfile(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(store))
			cartGroup.POST("", cartControllers.AddCartItem(db, store))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(store))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(store))
			cartGroup.DELETE("", cartControllers.ClearUserCart(store))
		}

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(db))
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
		}
	}
}
