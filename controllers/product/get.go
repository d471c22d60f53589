package productcontroller

import (
	"net/http"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Category").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		product.CategoryName = product.Category.Name
		c.JSON(http.StatusOK, product)
	}
}
