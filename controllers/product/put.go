package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateProduct replaces a product from a full payload (PUT).
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(db, c)
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.applyTo(db, product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		saveProduct(db, c, product)
	}
}

// PatchProduct applies a partial update (PATCH). Only keys present in the
// payload are touched, so a patch that never mentions priority still heals
// a legacy priority value on the way out.
func PatchProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(db, c)
		if !ok {
			return
		}

		var input map[string]interface{}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := applyPatch(db, product, input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		saveProduct(db, c, product)
	}
}

func applyPatch(db *gorm.DB, product *models.Product, input map[string]interface{}) error {
	for key, value := range input {
		switch key {
		case "title":
			s, _ := value.(string)
			if s == "" {
				return errTitleRequired
			}
			product.Title = s
		case "description":
			s, _ := value.(string)
			product.Description = s
		case "category":
			n, ok := value.(float64)
			if !ok || n < 1 {
				return errCategoryRequired
			}
			if err := checkCategory(db, uint(n)); err != nil {
				return err
			}
			product.CategoryID = uint(n)
		case "price":
			price, err := patchDecimal(value)
			if err != nil {
				return errPriceRequired
			}
			if price.IsNegative() {
				return errPriceNegative
			}
			product.Price = price
		case "priority":
			priority, err := models.NormalizePriority(value)
			if err != nil {
				return err
			}
			product.Priority = priority
		case "is_featured":
			b, _ := value.(bool)
			product.IsFeatured = b
		case "image_url":
			s, _ := value.(string)
			product.ImageURL = s
		case "quantity":
			n, ok := value.(float64)
			if !ok || n < 0 {
				return errQuantityNegative
			}
			product.Quantity = int(n)
		}
	}
	return nil
}

func patchDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	}
	return decimal.Zero, errPriceRequired
}

func loadProduct(db *gorm.DB, c *gin.Context) (*models.Product, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return nil, false
	}
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, false
	}
	return &product, true
}

// saveProduct runs the unconditional pre-write priority repair and persists.
// A row whose priority column held a legacy label or an out-of-range number
// leaves this path canonical, without any error-driven retry.
func saveProduct(db *gorm.DB, c *gin.Context, product *models.Product) {
	product.Priority = product.Priority.Canonical()

	if err := db.Save(product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if err := db.Preload("Category").First(product, product.ID).Error; err == nil {
		product.CategoryName = product.Category.Name
	}
	c.JSON(http.StatusOK, product)
}
