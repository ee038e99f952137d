package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"kassensystem/models"
	"kassensystem/repository"
)

// CheckoutService drives the cash register: it owns the current cart,
// validates stock when a line is added, and commits the cart on
// finalize. It is not safe for concurrent callers; every register
// session needs its own instance.
type CheckoutService struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	cart     *models.Cart
}

func NewCheckoutService(products repository.ProductRepository, sales repository.SaleRepository) *CheckoutService {
	return &CheckoutService{
		products: products,
		sales:    sales,
		cart:     models.NewCart(),
	}
}

// ListProducts returns all products ordered by name.
func (s *CheckoutService) ListProducts() ([]models.Product, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return products, nil
}

// GetProduct looks a product up by id.
func (s *CheckoutService) GetProduct(id int) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

// CreateProduct validates and stores a new product. The name is trimmed
// and must be non-empty; price must be positive and stock non-negative.
func (s *CheckoutService) CreateProduct(name string, price float64, stock int) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price <= 0 || stock < 0 {
		return nil, ErrInvalidInput
	}

	p := &models.Product{Name: name, Price: price, Stock: stock}
	if err := s.products.Create(p); err != nil {
		return nil, mapRepoErr(err)
	}
	return p, nil
}

// GoodsReceipt books additional stock for an existing product.
func (s *CheckoutService) GoodsReceipt(productID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return mapRepoErr(err)
	}

	p.IncreaseStock(quantity)
	if err := s.products.UpdateStock(p.ID, p.Stock); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

// AddItemToCart checks availability and appends a snapshot line (name
// and price at this instant) to the current cart. Stock is not touched
// until the checkout is finalized.
func (s *CheckoutService) AddItemToCart(productID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return mapRepoErr(err)
	}

	if !p.IsAvailable(quantity) {
		return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, p.Stock, quantity)
	}

	s.cart.Add(models.NewSale(p.ID, p.Name, quantity, p.Price))
	return nil
}

// FinalizeTransaction commits the cart: per line, in cart order, the
// product is re-fetched, its stock decremented and the sale persisted;
// then the receipt is rendered and a fresh cart started.
//
// The decrement does not re-check availability against the current
// stock. If the stock changed since the line was added, the new value
// can drop below zero and is then rejected by the database CHECK
// constraint. The lines are also not written in one database
// transaction, so a failure partway leaves the earlier lines committed.
func (s *CheckoutService) FinalizeTransaction() (string, error) {
	if s.cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	for _, line := range s.cart.Items() {
		p, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return "", mapRepoErr(err)
		}

		if err := s.products.UpdateStock(p.ID, p.Stock-line.Quantity); err != nil {
			return "", mapRepoErr(err)
		}

		sale := line
		if err := s.sales.Save(&sale); err != nil {
			return "", mapRepoErr(err)
		}
	}

	receipt := s.cart.Receipt()
	s.NewTransaction()
	return receipt, nil
}

// NewTransaction discards the current cart, whatever its contents, and
// starts an empty one.
func (s *CheckoutService) NewTransaction() {
	s.cart = models.NewCart()
	log.Printf("started checkout %s", s.cart.ID())
}

// CurrentCart returns the session id, a copy of the lines and the total.
func (s *CheckoutService) CurrentCart() (string, []models.Sale, float64) {
	return s.cart.ID(), s.cart.Items(), s.cart.Total()
}

// mapRepoErr translates repository errors into the service taxonomy.
// Anything that is not a known kind counts as a storage failure.
func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateName):
		return ErrDuplicateName
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
