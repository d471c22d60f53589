package services

import (
	"time"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/shopspring/decimal"
)

// ProductSummary is the slimmed product shape embedded in cart items.
type ProductSummary struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Category     uint            `json:"category"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Priority     models.Priority `json:"priority"`
	IsFeatured   bool            `json:"is_featured"`
	ImageURL     string          `json:"image_url"`
	Quantity     int             `json:"quantity"`
}

type CartItemView struct {
	ID        uint           `json:"id"`
	Product   ProductSummary `json:"product"`
	Quantity  int            `json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
}

// CartView is the serializable cart shape. Total is derived from current
// product prices on every build and rendered with two decimal places; it is
// never stored, which is what keeps every cart in step with price changes.
type CartView struct {
	ID        uint           `json:"id"`
	Items     []CartItemView `json:"items"`
	Total     string         `json:"total"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func buildCartView(cart *models.Cart) CartView {
	view := CartView{
		ID:        cart.ID,
		Items:     make([]CartItemView, 0, len(cart.Items)),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	total := decimal.Zero
	for _, item := range cart.Items {
		p := item.Product
		view.Items = append(view.Items, CartItemView{
			ID: item.ID,
			Product: ProductSummary{
				ID:           p.ID,
				Title:        p.Title,
				Category:     p.CategoryID,
				CategoryName: p.Category.Name,
				Price:        p.Price,
				Priority:     p.Priority,
				IsFeatured:   p.IsFeatured,
				ImageURL:     p.ImageURL,
				Quantity:     p.Quantity,
			},
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	view.Total = total.StringFixed(2)
	return view
}
