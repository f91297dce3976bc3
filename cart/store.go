package cart

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
)

// Store persists cart aggregates, one cart row per user.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the user's cart aggregate, creating the cart row on first use.
func (s *Store) Load(ctx context.Context, userID string) (*Cart, error) {
	row, err := s.cartRow(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := New()
	for _, item := range row.Items {
		c.AddItem(item.ProductID, item.ProductName, item.UnitPrice, item.Quantity)
	}
	return c, nil
}

// Save replaces the user's persisted lines with the aggregate's current
// state in one transaction.
func (s *Store) Save(ctx context.Context, userID string, c *Cart) error {
	row, err := s.cartRow(ctx, userID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", row.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		lines := c.Lines()
		if len(lines) == 0 {
			return nil
		}
		items := make([]models.CartItem, 0, len(lines))
		now := time.Now()
		for _, l := range lines {
			items = append(items, models.CartItem{
				CartID:      row.CartID,
				ProductID:   l.ProductID,
				ProductName: l.Name,
				UnitPrice:   l.UnitPrice,
				Quantity:    l.Quantity,
				AddedAt:     now,
			})
		}
		return tx.Create(&items).Error
	})
}

// Clear deletes all persisted lines for the user. Used by the payment
// webhook once checkout reports success.
func (s *Store) Clear(ctx context.Context, userID string) error {
	row, err := s.cartRow(ctx, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("cart_id = ?", row.CartID).Delete(&models.CartItem{}).Error
}

func (s *Store) cartRow(ctx context.Context, userID string) (*models.Cart, error) {
	var row models.Cart
	err := s.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at ASC, id ASC")
	}).Where("user_id = ?", userID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.Cart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
