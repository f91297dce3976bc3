package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Make        string         `gorm:"index" json:"make"`
	Model       string         `gorm:"index" json:"model"`
	Year        int            `gorm:"index" json:"year"`
	Condition   string         `gorm:"type:VARCHAR(20)" json:"condition"` // new, used, refurbished
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	CategoryID  *uint          `json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
