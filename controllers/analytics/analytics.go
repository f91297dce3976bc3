package analyticsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

const lowStockThreshold = 5

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type dashboardSummary struct {
	TotalRevenue   float64       `json:"total_revenue"`
	OrdersByStatus []statusCount `json:"orders_by_status"`
	LeadsByStatus  []statusCount `json:"leads_by_status"`
	CustomerCount  int64         `json:"customer_count"`
	LowStockCount  int64         `json:"low_stock_count"`
}

// GET /admin/analytics
//
// Revenue counts only orders whose payment cleared; pending and failed
// payments never inflate it.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db = db.WithContext(c.Request.Context())
		var summary dashboardSummary

		err := db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&summary.TotalRevenue).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}

		err = db.Model(&models.Order{}).
			Select("status", "COUNT(*) AS count").
			Group("status").
			Scan(&summary.OrdersByStatus).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		err = db.Model(&models.Lead{}).
			Select("status", "COUNT(*) AS count").
			Group("status").
			Scan(&summary.LeadsByStatus).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count leads"})
			return
		}

		err = db.Model(&models.User{}).
			Where("role = ?", string(rbac.RoleCustomer)).
			Count(&summary.CustomerCount).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count customers"})
			return
		}

		err = db.Model(&models.Product{}).
			Where("stock < ?", lowStockThreshold).
			Count(&summary.LowStockCount).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count low-stock products"})
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}

// GET /admin/analytics/low-stock
func GetLowStockProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.WithContext(c.Request.Context()).
			Where("stock < ?", lowStockThreshold).
			Order("stock ASC").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low-stock products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
