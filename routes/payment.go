package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/cart"
	paymentControllers "github.com/autoparts-hub/storefront-api/controllers/payment"
	"github.com/autoparts-hub/storefront-api/middleware"
)

// SetupPaymentRoutes registers the hosted-checkout endpoints. The session
// endpoint needs the caller's JWT; the webhook is called by the processor and
// is signature-verified instead.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store) {
	paymentGroup := r.Group("/payment")
	{
		paymentGroup.POST("/session", middleware.ValidateToken, paymentControllers.CreateSessionHandler(db))
		paymentGroup.POST("/webhook", middleware.PaymentWebhookAuth(), paymentControllers.WebhookHandler(db, store))
	}
}
