package service

import (
	"database/sql"
	"fmt"
	"time"

	"kassensystem/models"
)

// DefaultLowStockThreshold flags products that need restocking.
const DefaultLowStockThreshold = 10

// DefaultTopProductCount limits the bestseller list on the dashboard.
const DefaultTopProductCount = 5

const dateLayout = "2006-01-02"

// StatisticsService answers read-only dashboard queries directly
// against the database.
type StatisticsService struct {
	db *sql.DB
}

func NewStatisticsService(db *sql.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// DailyRevenue sums the line totals of all sales on the given day.
func (s *StatisticsService) DailyRevenue(date time.Time) (float64, error) {
	var revenue float64
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(line_total), 0.0) FROM sales
		WHERE DATE(timestamp) = ?
	`, date.Format(dateLayout)).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return revenue, nil
}

// DailySaleCount counts the sale lines persisted on the given day.
func (s *StatisticsService) DailySaleCount(date time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sales
		WHERE DATE(timestamp) = ?
	`, date.Format(dateLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}

// TopProductsByQuantity returns the products with the highest summed
// sale quantity on the given day, descending, at most n rows.
func (s *StatisticsService) TopProductsByQuantity(date time.Time, n int) ([]models.TopProduct, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.price, SUM(v.quantity) AS sold
		FROM products p
		JOIN sales v ON p.id = v.product_id
		WHERE DATE(v.timestamp) = ?
		GROUP BY p.id, p.name, p.price
		ORDER BY sold DESC
		LIMIT ?
	`, date.Format(dateLayout), n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	top := []models.TopProduct{}
	for rows.Next() {
		var t models.TopProduct
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.QuantitySold); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		top = append(top, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return top, nil
}

// LowStock returns products whose stock is below the threshold,
// ascending by stock.
func (s *StatisticsService) LowStock(threshold int) ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, price, stock FROM products
		WHERE stock < ?
		ORDER BY stock ASC
	`, threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return products, nil
}

// Dashboard bundles the day's numbers for the overview screen.
func (s *StatisticsService) Dashboard(date time.Time) (*models.DashboardSummary, error) {
	revenue, err := s.DailyRevenue(date)
	if err != nil {
		return nil, err
	}
	count, err := s.DailySaleCount(date)
	if err != nil {
		return nil, err
	}
	top, err := s.TopProductsByQuantity(date, DefaultTopProductCount)
	if err != nil {
		return nil, err
	}
	low, err := s.LowStock(DefaultLowStockThreshold)
	if err != nil {
		return nil, err
	}
	return &models.DashboardSummary{
		Revenue:     revenue,
		SaleCount:   count,
		TopProducts: top,
		LowStock:    low,
	}, nil
}
