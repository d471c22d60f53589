package productcontroller

import (
	"errors"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput is the JSON payload for product create and full update.
// Priority is left untyped because clients may send a number, a numeric
// string or a label; NormalizePriority sorts it out.
type ProductInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    *uint            `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Priority    interface{}      `json:"priority"`
	IsFeatured  *bool            `json:"is_featured"`
	ImageURL    string           `json:"image_url"`
	Quantity    *int             `json:"quantity"`
}

var (
	errTitleRequired    = errors.New("title is required")
	errCategoryRequired = errors.New("category is required")
	errCategoryMissing  = errors.New("category does not exist")
	errPriceRequired    = errors.New("price is required")
	errPriceNegative    = errors.New("price must be >= 0")
	errQuantityNegative = errors.New("quantity must be >= 0")
)

// applyTo validates the full payload and writes it onto product. Absent
// priority defaults, absent quantity means zero stock.
func (in *ProductInput) applyTo(db *gorm.DB, product *models.Product) error {
	if in.Title == "" {
		return errTitleRequired
	}
	if in.Category == nil {
		return errCategoryRequired
	}
	if err := checkCategory(db, *in.Category); err != nil {
		return err
	}
	if in.Price == nil {
		return errPriceRequired
	}
	if in.Price.IsNegative() {
		return errPriceNegative
	}
	priority, err := models.NormalizePriority(in.Priority)
	if err != nil {
		return err
	}
	quantity := 0
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return errQuantityNegative
		}
		quantity = *in.Quantity
	}

	product.Title = in.Title
	product.Description = in.Description
	product.CategoryID = *in.Category
	product.Price = *in.Price
	product.Priority = priority
	product.ImageURL = in.ImageURL
	product.Quantity = quantity
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	} else {
		product.IsFeatured = false
	}
	return nil
}

func checkCategory(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errCategoryMissing
	}
	return nil
}
