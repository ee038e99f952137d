package service

import "errors"

// Error taxonomy surfaced by the services. Callers match with errors.Is;
// the HTTP layer maps each kind to a status code.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrDuplicateName     = errors.New("a product with this name already exists")
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
