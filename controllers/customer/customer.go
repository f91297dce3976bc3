package customerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/middleware"
	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

type UpdateCustomerInput struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Phone     string `json:"phone"`
}

// GET /admin/customers
func ListCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.WithContext(c.Request.Context()).
			Select("id", "email", "first_name", "last_name", "phone", "created_at").
			Where("role = ?", string(rbac.RoleCustomer))

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?",
				like, like, like, like,
			)
		}

		var customers []models.User
		if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GET /admin/customers/:id
func GetCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer models.User
		err := db.WithContext(c.Request.Context()).
			Preload("Orders", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at DESC")
			}).
			Preload("Orders.Items").
			Where("id = ? AND role = ?", c.Param("id"), string(rbac.RoleCustomer)).
			First(&customer).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// PUT /admin/customers/:id
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteCustomers, rbac.ActionEdit) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to edit customers"})
			return
		}

		var customer models.User
		err := db.Where("id = ? AND role = ?", c.Param("id"), string(rbac.RoleCustomer)).
			First(&customer).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		var input UpdateCustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer.FirstName = input.FirstName
		customer.LastName = input.LastName
		customer.Phone = input.Phone
		if err := db.Save(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// DELETE /admin/customers/:id
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteCustomers, rbac.ActionDelete) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete customers"})
			return
		}

		result := db.Where("role = ?", string(rbac.RoleCustomer)).
			Delete(&models.User{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
	}
}
