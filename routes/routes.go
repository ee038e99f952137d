package routes

import (
	"github.com/gin-gonic/gin"

	"kassensystem/controllers"
)

// RegisterRoutes wires all API endpoints.
func RegisterRoutes(router *gin.Engine, products *controllers.ProductController, checkout *controllers.CheckoutController, stats *controllers.StatisticsController) {
	api := router.Group("/api")
	{
		// Product routes
		api.POST("/products", products.CreateProduct)
		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProductByID)
		api.POST("/products/:id/goods-receipt", products.GoodsReceipt)

		// Cart and checkout routes
		api.GET("/cart", checkout.GetCart)
		api.POST("/cart/items", checkout.AddItem)
		api.DELETE("/cart", checkout.ResetCart)
		api.POST("/checkout", checkout.Checkout)

		// Statistics routes
		api.GET("/statistics/revenue", stats.Revenue)
		api.GET("/statistics/sales-count", stats.SaleCount)
		api.GET("/statistics/top-products", stats.TopProducts)
		api.GET("/statistics/low-stock", stats.LowStock)
		api.GET("/statistics/dashboard", stats.Dashboard)
	}
}
