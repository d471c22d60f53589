package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/catalog-labs/catalog-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

type UpdateItemInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity *int `json:"quantity" binding:"required"`
}

type RemoveItemInput struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// POST /carts
func CreateCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.CreateCart()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// GET /carts
func ListCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Order("id").Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(carts), "results": carts})
	}
}

// GET /carts/:id
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := cartParam(c)
		if !ok {
			return
		}
		view, err := svc.GetCart(cartID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /carts/:id
func DeleteCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := cartParam(c)
		if !ok {
			return
		}
		if err := svc.DeleteCart(cartID); err != nil {
			respondCartError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// POST /carts/:id/add_item
func AddItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := cartParam(c)
		if !ok {
			return
		}
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		view, err := svc.AddItem(cartID, input.ProductID, quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// PATCH /carts/:id/update_item
func UpdateItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := cartParam(c)
		if !ok {
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		view, err := svc.UpdateItem(cartID, input.ItemID, *input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /carts/:id/remove_item
func RemoveItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := cartParam(c)
		if !ok {
			return
		}
		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		view, err := svc.RemoveItem(cartID, input.ItemID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func cartParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
		return 0, false
	}
	return uint(id), true
}

func respondCartError(c *gin.Context, err error) {
	var stockErr *services.StockError
	switch {
	case errors.Is(err, services.ErrQuantityTooLow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be >= 1"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Requested quantity exceeds stock.",
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.Is(err, services.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}
