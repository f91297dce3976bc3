package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/cart"
	orderControllers "github.com/autoparts-hub/storefront-api/controllers/order"
	"github.com/autoparts-hub/storefront-api/models"
)

// hostedSessionResponse is the processor's create-session reply.
type hostedSessionResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func paymentConfig() (storeID int, authKey, apiURL string, testMode int, err error) {
	storeID, _ = strconv.Atoi(os.Getenv("PAYMENT_STORE_ID"))
	authKey = os.Getenv("PAYMENT_AUTH_KEY")
	apiURL = os.Getenv("PAYMENT_API_URL")

	mode := os.Getenv("PAYMENT_MODE")
	if mode == "sandbox" || mode == "dev" {
		testMode = 1
	}

	if storeID == 0 || authKey == "" || apiURL == "" {
		return 0, "", "", 0, fmt.Errorf("payment configuration missing")
	}
	return storeID, authKey, apiURL, testMode, nil
}

// CreateHostedSession asks the processor for a hosted payment page and
// returns its URL plus the processor's transaction reference.
func CreateHostedSession(order *models.Order, currency, customerName, customerEmail string) (string, string, error) {
	storeID, authKey, apiURL, testMode, err := paymentConfig()
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"method":  "create",
		"store":   storeID,
		"authkey": authKey,
		"order": map[string]interface{}{
			"cartid":      order.OrderRef,
			"test":        testMode,
			"amount":      fmt.Sprintf("%.2f", order.TotalAmount),
			"currency":    currency,
			"description": fmt.Sprintf("Order %s", order.OrderRef),
		},
		"customer": map[string]interface{}{
			"name":  customerName,
			"email": customerEmail,
			"address": map[string]string{
				"line1":    order.BillingAddress.Street,
				"city":     order.BillingAddress.City,
				"region":   order.BillingAddress.State,
				"country":  order.BillingAddress.Country,
				"postcode": order.BillingAddress.PostalCode,
			},
		},
		"return": map[string]string{
			"authorised": os.Getenv("PAYMENT_SUCCESS_URL"),
			"declined":   os.Getenv("PAYMENT_FAILURE_URL"),
			"cancelled":  os.Getenv("PAYMENT_CANCEL_URL"),
		},
	}

	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to reach payment processor: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("payment API error (%d): %s", resp.StatusCode, string(body))
	}

	var sessionResp hostedSessionResponse
	if err := json.Unmarshal(body, &sessionResp); err != nil {
		return "", "", fmt.Errorf("failed to parse processor response: %v", err)
	}
	if sessionResp.Error != nil {
		return "", "", fmt.Errorf("processor error: %s", sessionResp.Error.Message)
	}
	if sessionResp.Order.URL == "" {
		return "", "", fmt.Errorf("processor returned empty payment URL")
	}

	return sessionResp.Order.URL, sessionResp.Order.Ref, nil
}

// POST /payment/session
//
// Creates a hosted checkout session for one of the caller's pending orders.
// The cart is untouched here; only the webhook's success report clears it.
func CreateSessionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input struct {
			OrderRef string `json:"order_ref" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		err := db.Where("order_ref = ? AND user_id = ?", input.OrderRef, userID).First(&order).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusConflict, gin.H{"error": "Order is already paid"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		var settings models.StoreSetting
		db.First(&settings)
		currency := settings.Currency
		if currency == "" {
			currency = "USD"
		}

		paymentURL, paymentRef, err := CreateHostedSession(&order, currency,
			user.FirstName+" "+user.LastName, user.Email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"payment_url": paymentURL,
			"payment_ref": paymentRef,
			"order_ref":   order.OrderRef,
		})
	}
}

// POST /payment/webhook
//
// Form-encoded success/failure report from the processor, signature-verified
// by middleware. "A" means approved; anything else leaves cart and order
// recoverable.
func WebhookHandler(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
			return
		}

		orderRef := c.PostForm("tran_cartid")
		tranRef := c.PostForm("tran_ref")
		tranStatus := c.PostForm("tran_status")

		if orderRef == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing tran_cartid"})
			return
		}

		if tranStatus != "A" {
			if err := orderControllers.MarkOrderPaymentFailed(db, orderRef); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record declined payment"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		if err := orderControllers.MarkOrderPaid(c.Request.Context(), db, store, orderRef, tranRef); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize order", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order confirmed"})
	}
}
