package repository

import (
	"errors"

	"kassensystem/models"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a product name is already taken.
var ErrDuplicateName = errors.New("duplicate product name")

// ProductRepository is the persistence contract for products. Create
// assigns the generated id to the passed product.
type ProductRepository interface {
	Create(p *models.Product) error
	GetByID(id int) (*models.Product, error)
	List() ([]models.Product, error)
	UpdateStock(id int, newStock int) error
}

// SaleRepository persists finalized sale lines. Save assigns the
// generated id to the passed sale.
type SaleRepository interface {
	Save(s *models.Sale) error
}
