package models

import "time"

// StoreSetting is a single-row table holding storefront configuration.
type StoreSetting struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StoreName       string    `json:"store_name"`
	ContactEmail    string    `json:"contact_email"`
	Currency        string    `gorm:"type:VARCHAR(3);default:'USD'" json:"currency"`
	FlatShippingFee float64   `json:"flat_shipping_fee"`
	UpdatedAt       time.Time `json:"updated_at"`
}
