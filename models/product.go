package models

// Product is a sellable article with its current stock level. The ID is
// assigned by the store on creation.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// IsAvailable reports whether enough stock is left for the requested quantity.
func (p *Product) IsAvailable(quantity int) bool {
	return p.Stock >= quantity
}

// IncreaseStock adds the given quantity to the stock level (goods receipt).
func (p *Product) IncreaseStock(quantity int) {
	p.Stock += quantity
}

// DecreaseStock subtracts the given quantity if enough stock is left and
// reports whether the stock was sufficient.
func (p *Product) DecreaseStock(quantity int) bool {
	if p.Stock < quantity {
		return false
	}
	p.Stock -= quantity
	return true
}
