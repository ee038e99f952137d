package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kassensystem/config"
	"kassensystem/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := config.OpenDB(filepath.Join(t.TempDir(), "kasse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProductCreateAssignsID(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	p := &models.Product{Name: "Brot", Price: 2.50, Stock: 20}
	require.NoError(t, repo.Create(p))
	assert.NotZero(t, p.ID)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brot", got.Name)
	assert.InDelta(t, 2.50, got.Price, 0.001)
	assert.Equal(t, 20, got.Stock)
}

func TestProductCreateDuplicateName(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.Product{Name: "Brot", Price: 2.50, Stock: 20}))

	err := repo.Create(&models.Product{Name: "Brot", Price: 3.00, Stock: 5})
	assert.ErrorIs(t, err, ErrDuplicateName)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductGetByIDNotFound(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductListOrderedByName(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.Product{Name: "Milch", Price: 1.20, Stock: 15}))
	require.NoError(t, repo.Create(&models.Product{Name: "Apfel", Price: 0.50, Stock: 100}))
	require.NoError(t, repo.Create(&models.Product{Name: "Brot", Price: 2.50, Stock: 20}))

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Apfel", products[0].Name)
	assert.Equal(t, "Brot", products[1].Name)
	assert.Equal(t, "Milch", products[2].Name)
}

func TestProductUpdateStock(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	p := &models.Product{Name: "Brot", Price: 2.50, Stock: 20}
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.UpdateStock(p.ID, 17))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, got.Stock)
}

func TestProductUpdateStockNotFound(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	assert.ErrorIs(t, repo.UpdateStock(42, 5), ErrNotFound)
}

func TestProductUpdateStockRejectsNegative(t *testing.T) {
	repo := NewSQLiteProductRepository(newTestDB(t))

	p := &models.Product{Name: "Brot", Price: 2.50, Stock: 2}
	require.NoError(t, repo.Create(p))

	// the schema CHECK keeps stock non-negative at the storage boundary
	err := repo.UpdateStock(p.ID, -1)
	require.Error(t, err)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestSaleSaveAssignsID(t *testing.T) {
	db := newTestDB(t)
	products := NewSQLiteProductRepository(db)
	sales := NewSQLiteSaleRepository(db)

	p := &models.Product{Name: "Brot", Price: 2.50, Stock: 20}
	require.NoError(t, products.Create(p))

	s := &models.Sale{
		Timestamp:   time.Now(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    3,
		UnitPrice:   2.50,
		LineTotal:   7.50,
	}
	require.NoError(t, sales.Save(s))
	assert.NotZero(t, s.ID)

	var quantity int
	var lineTotal float64
	var ts string
	err := db.QueryRow(`SELECT timestamp, quantity, line_total FROM sales WHERE id = ?`, s.ID).
		Scan(&ts, &quantity, &lineTotal)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
	assert.InDelta(t, 7.50, lineTotal, 0.001)
	assert.Equal(t, s.Timestamp.Format(TimestampLayout), ts)
}
