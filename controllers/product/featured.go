package productcontroller

import (
	"net/http"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFeaturedProducts lists featured products, newest first.
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Preload("Category").
			Where("is_featured = ?", true).
			Order("created_at desc").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		for i := range products {
			products[i].CategoryName = products[i].Category.Name
		}
		c.JSON(http.StatusOK, products)
	}
}
