package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kassensystem/service"
)

// ProductController exposes product management over HTTP.
type ProductController struct {
	checkout *service.CheckoutService
}

func NewProductController(checkout *service.CheckoutService) *ProductController {
	return &ProductController{checkout: checkout}
}

type createProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CreateProduct handles POST /api/products.
func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.checkout.CreateProduct(req.Name, req.Price, req.Stock)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListProducts handles GET /api/products.
func (ctl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctl.checkout.ListProducts()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/products/:id.
func (ctl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	p, err := ctl.checkout.GetProduct(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

type goodsReceiptRequest struct {
	Quantity int `json:"quantity"`
}

// GoodsReceipt handles POST /api/products/:id/goods-receipt.
func (ctl *ProductController) GoodsReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req goodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.checkout.GoodsReceipt(id, req.Quantity); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}
