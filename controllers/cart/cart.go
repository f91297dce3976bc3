package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/cart"
	"github.com/autoparts-hub/storefront-api/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items    []cart.Line `json:"items"`
	Count    int         `json:"count"`
	Subtotal float64     `json:"subtotal"`
}

func respond(c *gin.Context, agg *cart.Cart, status int) {
	c.JSON(status, cartResponse{
		Items:    agg.Lines(),
		Count:    agg.Len(),
		Subtotal: agg.Subtotal(),
	})
}

// GET /user/cart
func GetUserCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		agg, err := store.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respond(c, agg, http.StatusOK)
	}
}

// POST /user/cart
//
// Adding a product already in the cart increments its quantity; the name and
// unit price snapshot is taken here, at add time.
func AddCartItem(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if product.Stock < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		agg, err := store.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		agg.AddItem(product.ID, product.Name, product.Price, input.Quantity)
		if err := store.Save(c.Request.Context(), userID, agg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respond(c, agg, http.StatusCreated)
	}
}

// PUT /user/cart/:product_id
//
// Sets the line's quantity. A non-positive quantity removes the line.
func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		agg, err := store.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		agg.UpdateQuantity(uint(productID), input.Quantity)
		if err := store.Save(c.Request.Context(), userID, agg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respond(c, agg, http.StatusOK)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		agg, err := store.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if _, ok := agg.Line(uint(productID)); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		agg.RemoveItem(uint(productID))
		if err := store.Save(c.Request.Context(), userID, agg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		respond(c, agg, http.StatusOK)
	}
}

// DELETE /user/cart
func ClearUserCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if err := store.Clear(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
