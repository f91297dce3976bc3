package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsControllers "github.com/autoparts-hub/storefront-api/controllers/analytics"
	customerControllers "github.com/autoparts-hub/storefront-api/controllers/customer"
	leadControllers "github.com/autoparts-hub/storefront-api/controllers/lead"
	orderControllers "github.com/autoparts-hub/storefront-api/controllers/order"
	productControllers "github.com/autoparts-hub/storefront-api/controllers/product"
	settingsControllers "github.com/autoparts-hub/storefront-api/controllers/settings"
	teamControllers "github.com/autoparts-hub/storefront-api/controllers/team"
	"github.com/autoparts-hub/storefront-api/middleware"
	"github.com/autoparts-hub/storefront-api/rbac"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Every section carries
// its own route guard; action-level checks live in the handlers.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, resolver middleware.RoleResolver) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken)

	// Post-login landing: where the admin client should navigate first.
	adminGroup.GET("/landing", middleware.RequireAdmin(resolver), func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		c.JSON(http.StatusOK, gin.H{"route": "/admin/" + rbac.DefaultRouteFor(role)})
	})

	// Live order feed for the back-office dashboard.
	adminGroup.GET("/ws/orders", middleware.RequireRoute(resolver, rbac.RouteOrders),
		orderControllers.OrderWebSocketHandler)

	productAdmin := adminGroup.Group("/products", middleware.RequireRoute(resolver, rbac.RouteProducts))
	{
		productAdmin.GET("", productControllers.GetProducts(db))
		productAdmin.POST("", productControllers.CreateProduct(db))
		productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
		productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		productAdmin.PUT("/:id/image", productControllers.UploadProductImage(db))
		productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
		productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
	}

	categoryAdmin := adminGroup.Group("/categories", middleware.RequireRoute(resolver, rbac.RouteCategories))
	{
		categoryAdmin.GET("", productControllers.GetAllCategories(db))
		categoryAdmin.POST("", productControllers.CreateCategory(db))
		categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
		categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
	}

	orderAdmin := adminGroup.Group("/orders", middleware.RequireRoute(resolver, rbac.RouteOrders))
	{
		orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
		orderAdmin.GET("/:orderID", orderControllers.GetOrderHandler(db))
		orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
		orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}

	customerAdmin := adminGroup.Group("/customers", middleware.RequireRoute(resolver, rbac.RouteCustomers))
	{
		customerAdmin.GET("", customerControllers.ListCustomers(db))
		customerAdmin.GET("/:id", customerControllers.GetCustomer(db))
		customerAdmin.PUT("/:id", customerControllers.UpdateCustomer(db))
		customerAdmin.DELETE("/:id", customerControllers.DeleteCustomer(db))
	}

	teamAdmin := adminGroup.Group("/team", middleware.RequireRoute(resolver, rbac.RouteTeam))
	{
		teamAdmin.GET("", teamControllers.ListMembers(db))
		teamAdmin.POST("", teamControllers.CreateMember(db))
		teamAdmin.GET("/assignable-roles", teamControllers.ListAssignableRoles)
		teamAdmin.PUT("/:id", teamControllers.UpdateMember(db))
		teamAdmin.DELETE("/:id", teamControllers.DeleteMember(db))
	}

	leadAdmin := adminGroup.Group("/leads", middleware.RequireRoute(resolver, rbac.RouteLeads))
	{
		leadAdmin.GET("", leadControllers.ListLeads(db))
		leadAdmin.POST("", leadControllers.CreateLead(db))
		leadAdmin.GET("/assignees", leadControllers.ListAssignees(db))
		leadAdmin.PUT("/:id", leadControllers.UpdateLead(db))
		leadAdmin.PUT("/:id/status", leadControllers.UpdateLeadStatus(db))
		leadAdmin.PUT("/:id/assign", leadControllers.AssignLead(db))
		leadAdmin.DELETE("/:id", leadControllers.DeleteLead(db))
	}

	analyticsAdmin := adminGroup.Group("/analytics", middleware.RequireRoute(resolver, rbac.RouteAnalytics))
	{
		analyticsAdmin.GET("", analyticsControllers.GetDashboard(db))
		analyticsAdmin.GET("/low-stock", analyticsControllers.GetLowStockProducts(db))
	}

	settingsAdmin := adminGroup.Group("/settings", middleware.RequireRoute(resolver, rbac.RouteSettings))
	{
		settingsAdmin.GET("", settingsControllers.GetSettings(db))
		settingsAdmin.PUT("", settingsControllers.UpdateSettings(db))
	}
}
