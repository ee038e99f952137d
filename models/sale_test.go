package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSaleComputesLineTotal(t *testing.T) {
	s := NewSale(1, "Brot", 3, 2.50)

	assert.Equal(t, 1, s.ProductID)
	assert.Equal(t, "Brot", s.ProductName)
	assert.Equal(t, 3, s.Quantity)
	assert.InDelta(t, 7.50, s.LineTotal, 0.001)
	assert.False(t, s.Timestamp.IsZero())
}

func TestSetQuantityRecomputesLineTotal(t *testing.T) {
	s := NewSale(1, "Brot", 3, 2.50)

	s.SetQuantity(5)
	assert.InDelta(t, 12.50, s.LineTotal, 0.001)

	// recompute is idempotent
	s.SetQuantity(5)
	assert.InDelta(t, 12.50, s.LineTotal, 0.001)
}

func TestSetUnitPriceRecomputesLineTotal(t *testing.T) {
	s := NewSale(2, "Milch", 3, 1.20)

	s.SetUnitPrice(1.50)
	assert.InDelta(t, 4.50, s.LineTotal, 0.001)

	s.SetUnitPrice(1.50)
	assert.InDelta(t, 4.50, s.LineTotal, 0.001)
}

func TestSaleString(t *testing.T) {
	s := NewSale(1, "Brot", 3, 2.50)

	assert.Equal(t, "3x Brot à 2,50€ = 7,50€", s.String())
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "0,30€", FormatEuro(0.3))
	assert.Equal(t, "7,50€", FormatEuro(7.5))
	assert.Equal(t, "1234,00€", FormatEuro(1234))
}
