package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `json:"description"`
	CategoryID  uint            `gorm:"not null;index" json:"category"`
	Category    Category        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Priority    Priority        `gorm:"default:2" json:"priority"`
	IsFeatured  bool            `gorm:"default:false" json:"is_featured"`
	ImageURL    string          `json:"image_url"`
	// Available stock quantity, checked on cart admission.
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated from the preloaded Category on reads, not a column.
	CategoryName string `gorm:"-" json:"category_name"`
}
