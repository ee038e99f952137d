package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kassensystem/service"
)

// CheckoutController exposes the cart and checkout operations over HTTP.
type CheckoutController struct {
	checkout *service.CheckoutService
}

func NewCheckoutController(checkout *service.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// AddItem handles POST /api/cart/items.
func (ctl *CheckoutController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.checkout.AddItemToCart(req.ProductID, req.Quantity); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	cartID, items, total := ctl.checkout.CurrentCart()
	c.JSON(http.StatusCreated, gin.H{
		"cart_id": cartID,
		"items":   items,
		"total":   total,
	})
}

// GetCart handles GET /api/cart and returns the current cart view.
func (ctl *CheckoutController) GetCart(c *gin.Context) {
	cartID, items, total := ctl.checkout.CurrentCart()
	c.JSON(http.StatusOK, gin.H{
		"cart_id": cartID,
		"items":   items,
		"total":   total,
	})
}

// ResetCart handles DELETE /api/cart: the current cart is discarded and
// a new transaction started.
func (ctl *CheckoutController) ResetCart(c *gin.Context) {
	ctl.checkout.NewTransaction()
	c.JSON(http.StatusOK, gin.H{"message": "New transaction started"})
}

// Checkout handles POST /api/checkout and returns the rendered receipt.
func (ctl *CheckoutController) Checkout(c *gin.Context) {
	receipt, err := ctl.checkout.FinalizeTransaction()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}
