package productcontroller

import (
	"net/http"
	"strings"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// orderFields are the only columns list ordering may use.
var orderFields = map[string]bool{
	"created_at": true,
	"price":      true,
	"priority":   true,
}

// GetProducts lists products with filtering, search, ordering and
// pagination. Defaults to newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if categoryID := c.Query("category"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if priority := c.Query("priority"); priority != "" {
			query = query.Where("priority = ?", priority)
		}
		if featured := c.Query("is_featured"); featured != "" {
			query = query.Where("is_featured = ?", featured == "true" || featured == "True" || featured == "1")
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
		}

		query = query.Order(orderClause(c.DefaultQuery("ordering", "-created_at")))

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		offset, limit := pageParams(c)
		var products []models.Product
		if err := query.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		for i := range products {
			products[i].CategoryName = products[i].Category.Name
		}

		c.JSON(http.StatusOK, gin.H{"count": count, "results": products})
	}
}

func orderClause(ordering string) string {
	direction := "asc"
	if strings.HasPrefix(ordering, "-") {
		direction = "desc"
		ordering = ordering[1:]
	}
	if !orderFields[ordering] {
		ordering, direction = "created_at", "desc"
	}
	return ordering + " " + direction
}
