package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/autoparts-hub/storefront-api/cart"
	"github.com/autoparts-hub/storefront-api/models"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type AddressInput struct {
	Street     string `json:"street" binding:"required,min=5"`
	City       string `json:"city" binding:"required,min=2"`
	State      string `json:"state" binding:"required,min=2"`
	PostalCode string `json:"postal_code" binding:"required,min=5"`
	Country    string `json:"country" binding:"required,min=2"`
}

type PlaceOrderInput struct {
	ShippingAddress AddressInput  `json:"shipping_address" binding:"required"`
	BillingAddress  *AddressInput `json:"billing_address"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusReadyToShip,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusReturned,
		models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func toAddress(in AddressInput) models.Address {
	return models.Address{
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

// PlaceOrder snapshots the user's cart into a pending order: product rows are
// locked, stock verified and deducted, totals computed. The cart is NOT
// cleared here; only the payment success report clears it, so a failed
// payment leaves the cart intact for retry.
func PlaceOrder(db *gorm.DB, userID string, input PlaceOrderInput, shippingFee float64) (*models.Order, error) {
	var cartRow models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cartRow).Error; err != nil {
		return nil, err
	}
	if len(cartRow.Items) == 0 {
		return nil, ErrEmptyCart
	}

	billing := input.ShippingAddress
	if input.BillingAddress != nil {
		billing = *input.BillingAddress
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, item := range cartRow.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.Join(ErrInsufficientStock, errors.New(item.ProductName))
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += item.UnitPrice * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           orderItems,
			ShippingCost:    shippingFee,
			TotalAmount:     total + shippingFee,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			ShippingAddress: toAddress(input.ShippingAddress),
			BillingAddress:  toAddress(billing),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order_placed", order)
	return &order, nil
}

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var settings models.StoreSetting
		db.First(&settings) // zero fee if settings row is absent

		order, err := PlaceOrder(db, userID, input, settings.FlatShippingFee)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		var orders []models.Order
		if err := db.WithContext(c.Request.Context()).
			Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.WithContext(c.Request.Context()).Preload("Items").Preload("User")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var orders []models.Order
		if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		err := db.WithContext(c.Request.Context()).
			Preload("Items").Preload("User").
			First(&order, "id = ?", c.Param("orderID")).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		order.Status = status
		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapPaymentStatus(input.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if err := db.Model(&order).Update("payment_status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}

		order.PaymentStatus = status
		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Order{}, "id = ?", c.Param("orderID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// MarkOrderPaid finalizes an order after the payment collaborator reports
// success: payment and order status flip, and the user's cart is cleared.
// This is the only path that clears a cart on checkout.
func MarkOrderPaid(ctx context.Context, db *gorm.DB, store *cart.Store, orderRef, paymentRef string) error {
	var order models.Order
	if err := db.Where("order_ref = ?", orderRef).First(&order).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"status":         models.OrderStatusConfirmed,
		"payment_ref":    paymentRef,
	}
	if err := db.Model(&order).Updates(updates).Error; err != nil {
		return err
	}

	if err := store.Clear(ctx, order.UserID); err != nil {
		return err
	}

	order.PaymentStatus = models.PaymentStatusPaid
	order.Status = models.OrderStatusConfirmed
	broadcastOrderEvent("order_paid", order)
	return nil
}

// MarkOrderPaymentFailed records a declined payment. The cart is left
// untouched so the user can retry.
func MarkOrderPaymentFailed(db *gorm.DB, orderRef string) error {
	var order models.Order
	if err := db.Where("order_ref = ?", orderRef).First(&order).Error; err != nil {
		return err
	}
	return db.Model(&order).Update("payment_status", models.PaymentStatusFailed).Error
}
