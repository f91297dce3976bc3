package middleware

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// Form fields included in the processor's webhook signature, in signing order.
var webhookSignedFields = []string{
	"tran_store", "tran_type", "tran_class", "tran_test", "tran_ref",
	"tran_prevref", "tran_firstref", "tran_order", "tran_currency",
	"tran_amount", "tran_cartid", "tran_desc", "tran_status",
	"tran_authcode", "tran_authmessage",
}

// PaymentWebhookAuth verifies the hosted processor's webhook signature.
// Sandbox/dev mode skips verification, matching the processor's test
// environment which sends unsigned notifications.
func PaymentWebhookAuth() gin.HandlerFunc {
	secretKey := os.Getenv("PAYMENT_WEBHOOK_SECRET")
	mode := strings.ToLower(os.Getenv("PAYMENT_MODE"))

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			c.Next()
			return
		}
		if secretKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook secret not configured"})
			c.Abort()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form for signature verification"})
			c.Abort()
			return
		}

		provided := c.PostForm("tran_check")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing tran_check signature"})
			c.Abort()
			return
		}

		values := make([]string, 0, len(webhookSignedFields))
		for _, f := range webhookSignedFields {
			values = append(values, strings.TrimSpace(c.PostForm(f)))
		}
		calculated := WebhookSignature(secretKey, values)

		if subtle.ConstantTimeCompare([]byte(strings.ToLower(provided)), []byte(calculated)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// WebhookSignature computes the hex SHA1 over secret and field values joined
// with ':' in signing order.
func WebhookSignature(secret string, values []string) string {
	parts := append([]string{secret}, values...)
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
