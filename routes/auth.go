package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/auth"
)

// SetupAuthRoutes registers the customer and role-family auth endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterCustomer(db))
		authGroup.POST("/login", auth.Login(db))

		// Role-scoped surfaces: /auth/admin/super_admin/login etc.
		adminAuth := authGroup.Group("/admin/:family")
		{
			adminAuth.POST("/register", auth.RegisterTeamAccount(db))
			adminAuth.POST("/login", auth.AdminLogin(db))
		}
	}
}
