package routes

import (
	cartControllers "github.com/catalog-labs/catalog-api/controllers/cart"
	productcontroller "github.com/catalog-labs/catalog-api/controllers/product"
	"github.com/catalog-labs/catalog-api/middleware"
	"github.com/catalog-labs/catalog-api/services"
	"github.com/catalog-labs/catalog-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires the /api route groups: categories, products, carts.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	cartSvc := services.NewCartService(store.NewGormStore(db))

	api := r.Group("/api")
	api.Use(middleware.RequestID)

	categories := api.Group("/categories")
	{
		categories.GET("", productcontroller.GetCategories(db))
		categories.GET("/:id", productcontroller.GetCategory(db))
		categories.POST("", middleware.RequireAPIKey, productcontroller.CreateCategory(db))
		categories.PUT("/:id", middleware.RequireAPIKey, productcontroller.UpdateCategory(db))
		categories.DELETE("/:id", middleware.RequireAPIKey, productcontroller.DeleteCategory(db))
	}

	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/featured", productcontroller.GetFeaturedProducts(db))
		products.GET("/:id", productcontroller.GetProduct(db))
		products.POST("", middleware.RequireAPIKey, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAPIKey, productcontroller.UpdateProduct(db))
		products.PATCH("/:id", middleware.RequireAPIKey, productcontroller.PatchProduct(db))
		products.DELETE("/:id", middleware.RequireAPIKey, productcontroller.DeleteProduct(db))
	}

	carts := api.Group("/carts")
	{
		carts.GET("", cartControllers.ListCarts(db))
		carts.POST("", cartControllers.CreateCart(cartSvc))
		carts.GET("/:id", cartControllers.GetCart(cartSvc))
		carts.DELETE("/:id", cartControllers.DeleteCart(cartSvc))
		carts.POST("/:id/add_item", cartControllers.AddItem(cartSvc))
		carts.PATCH("/:id/update_item", cartControllers.UpdateItem(cartSvc))
		carts.DELETE("/:id/remove_item", cartControllers.RemoveItem(cartSvc))
	}
}
