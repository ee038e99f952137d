package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kassensystem/service"
)

// StatisticsController exposes the read-only statistics queries.
type StatisticsController struct {
	stats *service.StatisticsService
}

func NewStatisticsController(stats *service.StatisticsService) *StatisticsController {
	return &StatisticsController{stats: stats}
}

// Revenue handles GET /api/statistics/revenue?date=YYYY-MM-DD.
func (ctl *StatisticsController) Revenue(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	revenue, err := ctl.stats.DailyRevenue(date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "revenue": revenue})
}

// SaleCount handles GET /api/statistics/sales-count?date=YYYY-MM-DD.
func (ctl *StatisticsController) SaleCount(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	count, err := ctl.stats.DailySaleCount(date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "sale_count": count})
}

// TopProducts handles GET /api/statistics/top-products?date=&limit=.
func (ctl *StatisticsController) TopProducts(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	limit, ok := intQuery(c, "limit", service.DefaultTopProductCount)
	if !ok {
		return
	}

	top, err := ctl.stats.TopProductsByQuantity(date, limit)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, top)
}

// LowStock handles GET /api/statistics/low-stock?threshold=.
func (ctl *StatisticsController) LowStock(c *gin.Context) {
	threshold, ok := intQuery(c, "threshold", service.DefaultLowStockThreshold)
	if !ok {
		return
	}

	products, err := ctl.stats.LowStock(threshold)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Dashboard handles GET /api/statistics/dashboard?date=.
func (ctl *StatisticsController) Dashboard(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	summary, err := ctl.stats.Dashboard(date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// dateParam reads the optional date query parameter, defaulting to
// today. It writes a 400 response itself when the format is wrong.
func dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return value, true
}
