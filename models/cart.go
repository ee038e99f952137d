package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cart collects the sale lines of the open checkout. Lines keep their
// insertion order and are only persisted when the checkout is
// finalized.
type Cart struct {
	id        string
	items     []Sale
	createdAt time.Time
}

// NewCart creates an empty cart for a fresh checkout session.
func NewCart() *Cart {
	return &Cart{
		id:        uuid.NewString(),
		createdAt: time.Now(),
	}
}

// ID returns the opaque identifier of this checkout session.
func (c *Cart) ID() string { return c.id }

// CreatedAt returns the time the cart was started.
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// Add appends a sale line to the cart.
func (c *Cart) Add(item Sale) {
	c.items = append(c.items, item)
}

// Remove deletes the first line structurally equal to the given one and
// reports whether a line was removed.
func (c *Cart) Remove(item Sale) bool {
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all lines.
func (c *Cart) Clear() {
	c.items = nil
}

// Total sums the line totals of all lines; 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.LineTotal
	}
	return total
}

// ItemCount returns the number of lines, not the quantity sum.
func (c *Cart) ItemCount() int { return len(c.items) }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Sale {
	out := make([]Sale, len(c.items))
	copy(out, c.items)
	return out
}

// Receipt renders the fixed-width bon for the cart: banner, date and
// time, one line per sale, the total and a footer.
func (c *Cart) Receipt() string {
	banner := strings.Repeat("=", 40)
	rule := strings.Repeat("-", 40)

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("              KASSENSYSTEM\n")
	b.WriteString(banner + "\n")
	b.WriteString("Datum: " + c.createdAt.Format("2006-01-02") + "\n")
	b.WriteString("Zeit:  " + c.createdAt.Format("15:04:05") + "\n")
	b.WriteString(rule + "\n")

	for _, it := range c.items {
		b.WriteString(it.String() + "\n")
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "GESAMT: %s\n", FormatEuro(c.Total()))
	b.WriteString(banner + "\n")
	b.WriteString("Vielen Dank für Ihren Einkauf!\n")
	return b.String()
}

// String gives a short one-line summary, mainly for logs.
func (c *Cart) String() string {
	return fmt.Sprintf("Cart{%d Artikel, Gesamtbetrag: %s}", c.ItemCount(), FormatEuro(c.Total()))
}
