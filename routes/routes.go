package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/cart"
	"github.com/autoparts-hub/storefront-api/middleware"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	store := cart.NewStore(db)
	resolver := middleware.NewRoleResolver(db)

	// Public auth and storefront routes (no middleware).
	SetupAuthRoutes(r, db)
	SetupStorefrontRoutes(r, db)

	// User routes (JWT-protected).
	SetupUserRoutes(r, db, store)

	// Admin routes (JWT + per-section role guard).
	SetupAdminRoutes(r, db, resolver)

	// Payment processor routes.
	SetupPaymentRoutes(r, db, store)
}
