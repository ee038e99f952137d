package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kassensystem/models"
)

// TimestampLayout is how sale timestamps are stored. Keeping them as
// sortable text lets the statistics queries use DATE(timestamp).
const TimestampLayout = "2006-01-02T15:04:05"

// SQLiteProductRepository implements ProductRepository on the embedded
// SQLite database.
type SQLiteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

func (r *SQLiteProductRepository) Create(p *models.Product) error {
	stmt, err := r.db.Prepare(`INSERT INTO products (name, price, stock) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(p.Name, p.Price, p.Stock)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read generated id: %w", err)
	}
	p.ID = int(id)
	return nil
}

func (r *SQLiteProductRepository) GetByID(id int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(`SELECT id, name, price, stock FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}
	return &p, nil
}

func (r *SQLiteProductRepository) List() ([]models.Product, error) {
	rows, err := r.db.Query(`SELECT id, name, price, stock FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return products, nil
}

func (r *SQLiteProductRepository) UpdateStock(id int, newStock int) error {
	result, err := r.db.Exec(`UPDATE products SET stock = ? WHERE id = ?`, newStock, id)
	if err != nil {
		return fmt.Errorf("failed to update stock of product %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SQLiteSaleRepository implements SaleRepository on the embedded SQLite
// database.
type SQLiteSaleRepository struct {
	db *sql.DB
}

func NewSQLiteSaleRepository(db *sql.DB) *SQLiteSaleRepository {
	return &SQLiteSaleRepository{db: db}
}

func (r *SQLiteSaleRepository) Save(s *models.Sale) error {
	stmt, err := r.db.Prepare(`
		INSERT INTO sales (timestamp, product_id, quantity, unit_price, line_total)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare sale insert: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(
		s.Timestamp.Format(TimestampLayout),
		s.ProductID,
		s.Quantity,
		s.UnitPrice,
		s.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read generated id: %w", err)
	}
	s.ID = int(id)
	return nil
}
