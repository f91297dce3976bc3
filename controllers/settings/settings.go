package settingsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/middleware"
	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

type SettingsInput struct {
	StoreName       string  `json:"store_name" binding:"required,min=2"`
	ContactEmail    string  `json:"contact_email" binding:"required,email"`
	Currency        string  `json:"currency" binding:"required,len=3"`
	FlatShippingFee float64 `json:"flat_shipping_fee" binding:"min=0"`
}

// loadSettings returns the single settings row, creating it with defaults on
// first access.
func loadSettings(db *gorm.DB) (*models.StoreSetting, error) {
	var settings models.StoreSetting
	err := db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = models.StoreSetting{
		StoreName: "Auto Parts Hub",
		Currency:  "USD",
	}
	if err := db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// GET /admin/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := loadSettings(db.WithContext(c.Request.Context()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /admin/settings
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteSettings, rbac.ActionEdit) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to edit settings"})
			return
		}

		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		settings, err := loadSettings(db.WithContext(c.Request.Context()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		settings.StoreName = input.StoreName
		settings.ContactEmail = input.ContactEmail
		settings.Currency = input.Currency
		settings.FlatShippingFee = input.FlatShippingFee
		if err := db.Save(settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
