package models

import (
	"fmt"
	"strings"
	"time"
)

// Sale is a single line of a checkout: one product sold at a point in
// time. Name and unit price are snapshots taken when the line was added
// to the cart; historical receipts must not change when the product
// record does.
type Sale struct {
	ID          int       `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
}

// NewSale builds a sale line for the given product snapshot. The
// timestamp defaults to now.
func NewSale(productID int, productName string, quantity int, unitPrice float64) Sale {
	return Sale{
		Timestamp:   time.Now(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   float64(quantity) * unitPrice,
	}
}

// SetQuantity updates the quantity and recomputes the line total.
func (s *Sale) SetQuantity(quantity int) {
	s.Quantity = quantity
	s.LineTotal = float64(s.Quantity) * s.UnitPrice
}

// SetUnitPrice updates the unit price and recomputes the line total.
func (s *Sale) SetUnitPrice(unitPrice float64) {
	s.UnitPrice = unitPrice
	s.LineTotal = float64(s.Quantity) * s.UnitPrice
}

// String renders the line the way it appears on the receipt, e.g.
// "3x Brot à 2,50€ = 7,50€".
func (s Sale) String() string {
	return fmt.Sprintf("%dx %s à %s = %s",
		s.Quantity, s.ProductName, FormatEuro(s.UnitPrice), FormatEuro(s.LineTotal))
}

// FormatEuro formats an amount with two decimal places, a comma as the
// decimal separator and the euro sign, e.g. 7.5 -> "7,50€". Receipts use
// this fixed German convention regardless of the host locale.
func FormatEuro(amount float64) string {
	return strings.Replace(fmt.Sprintf("%.2f€", amount), ".", ",", 1)
}
