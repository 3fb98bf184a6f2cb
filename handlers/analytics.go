package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
)

type EventCreateRequest struct {
	EventType  string         `json:"event_type" binding:"required"`
	ProductID  *uint          `json:"product_id"`
	CategoryID *uint          `json:"category_id"`
	Source     string         `json:"source"`
	Metadata   map[string]any `json:"metadata"`
}

// counterColumn maps product-scoped event types onto the counter they
// bump. Other event types are stored without fan-out.
var counterColumn = map[string]string{
	models.EventProductView:  "views",
	models.EventAddToCart:    "cart_adds",
	models.EventProductClick: "clicks",
}

// TrackPublicEvent ingests a menu-page ping. The event row is written
// first; the product counter bump is a separate atomic increment whose
// failure is logged, never surfaced.
func (h *Handler) TrackPublicEvent(c *gin.Context) {
	restaurant, err := h.publicRestaurant(c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	var req EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	event := models.AnalyticsEvent{
		RestaurantID: restaurant.ID,
		EventType:    req.EventType,
		ProductID:    req.ProductID,
		CategoryID:   req.CategoryID,
		Source:       req.Source,
		Metadata:     req.Metadata,
	}
	if err := h.DB.Create(&event).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao registrar evento")
		return
	}

	if col, ok := counterColumn[req.EventType]; ok && req.ProductID != nil {
		err := h.DB.Model(&models.Product{}).
			Where("id = ? AND restaurant_id = ?", *req.ProductID, restaurant.ID).
			UpdateColumn(col, gorm.Expr(col+" + 1")).Error
		if err != nil {
			h.Log.WithError(err).WithField("product_id", *req.ProductID).
				Warn("event counter update failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// todayWindow returns the caller's UTC calendar-day boundaries.
func todayWindow(now time.Time) (today, yesterday time.Time) {
	today = now.UTC().Truncate(24 * time.Hour)
	return today, today.AddDate(0, 0, -1)
}

// GetDashboard computes the headline numbers: today vs. yesterday,
// conversion funnel and the top sellers. Read-only, computed on demand.
func (h *Handler) GetDashboard(c *gin.Context) {
	rid := middleware.GetRestaurantID(c)
	today, yesterday := todayWindow(time.Now())

	var todayOrders, yesterdayOrders []models.Order
	h.DB.Where("restaurant_id = ? AND created_at >= ?", rid, today).Find(&todayOrders)
	h.DB.Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", rid, yesterday, today).
		Find(&yesterdayOrders)

	todayCount := len(todayOrders)
	todayRevenue := 0.0
	for _, o := range todayOrders {
		todayRevenue += o.Total
	}
	todayAvg := 0.0
	if todayCount > 0 {
		todayAvg = todayRevenue / float64(todayCount)
	}

	yesterdayCount := len(yesterdayOrders)
	yesterdayRevenue := 0.0
	for _, o := range yesterdayOrders {
		yesterdayRevenue += o.Total
	}

	// Growth is 0 when there is no yesterday to compare against.
	revenueGrowth := 0.0
	if yesterdayRevenue > 0 {
		revenueGrowth = (todayRevenue - yesterdayRevenue) / yesterdayRevenue * 100
	}
	ordersGrowth := 0.0
	if yesterdayCount > 0 {
		ordersGrowth = float64(todayCount-yesterdayCount) / float64(yesterdayCount) * 100
	}

	countEvents := func(eventType string) int64 {
		var n int64
		h.DB.Model(&models.AnalyticsEvent{}).
			Where("restaurant_id = ? AND event_type = ? AND created_at >= ?", rid, eventType, today).
			Count(&n)
		return n
	}

	var topProducts []models.Product
	h.DB.Where("restaurant_id = ?", rid).
		Order("orders_count desc, id asc").
		Limit(5).
		Find(&topProducts)

	top := make([]gin.H, 0, len(topProducts))
	for _, p := range topProducts {
		top = append(top, gin.H{"name": p.Name, "orders": p.OrdersCount, "revenue": p.Revenue})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dashboard": gin.H{
			"today": gin.H{
				"orders":     todayCount,
				"revenue":    round2(todayRevenue),
				"avg_ticket": round2(todayAvg),
			},
			"comparison": gin.H{
				"revenue_growth": round1(revenueGrowth),
				"orders_growth":  round1(ordersGrowth),
			},
			"funnel": gin.H{
				"page_views":      countEvents(models.EventPageView),
				"cart_adds":       countEvents(models.EventAddToCart),
				"checkout_clicks": countEvents(models.EventCheckoutClick),
				"orders_sent":     todayCount,
			},
			"top_products": top,
		},
	})
}

// productStat is one row of the per-product analytics views.
func productStat(p models.Product) gin.H {
	views := p.Views
	if views < 1 {
		views = 1
	}
	return gin.H{
		"id":           p.ID,
		"name":         p.Name,
		"views":        p.Views,
		"clicks":       p.Clicks,
		"cart_adds":    p.CartAdds,
		"orders_count": p.OrdersCount,
		"revenue":      round2(p.Revenue),
		"abandoned":    p.CartAdds - p.OrdersCount,
		"conversion":   round1(float64(p.OrdersCount) / float64(views) * 100),
	}
}

// GetProductAnalytics returns five independently sorted top-10 views of
// the tenant's products.
func (h *Handler) GetProductAnalytics(c *gin.Context) {
	rid := middleware.GetRestaurantID(c)

	topBy := func(order string) []gin.H {
		products := []models.Product{}
		h.DB.Where("restaurant_id = ?", rid).
			Order(order).
			Limit(10).
			Find(&products)
		stats := make([]gin.H, 0, len(products))
		for _, p := range products {
			stats = append(stats, productStat(p))
		}
		return stats
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"products": gin.H{
			"top_views":     topBy("views desc, id asc"),
			"top_clicks":    topBy("clicks desc, id asc"),
			"top_orders":    topBy("orders_count desc, id asc"),
			"top_revenue":   topBy("revenue desc, id asc"),
			"top_abandoned": topBy("(cart_adds - orders_count) desc, id asc"),
		},
	})
}

// GetSourceAnalytics groups the last 30 days of orders by acquisition
// source. Orders without a source count as "direct".
func (h *Handler) GetSourceAnalytics(c *gin.Context) {
	rid := middleware.GetRestaurantID(c)
	since := time.Now().UTC().AddDate(0, 0, -30)

	var orders []models.Order
	h.DB.Where("restaurant_id = ? AND created_at >= ?", rid, since).Find(&orders)

	type bucket struct {
		orders  int
		revenue float64
	}
	buckets := map[string]*bucket{}
	for _, o := range orders {
		source := o.Source
		if source == "" {
			source = "direct"
		}
		b := buckets[source]
		if b == nil {
			b = &bucket{}
			buckets[source] = b
		}
		b.orders++
		b.revenue += o.Total
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if buckets[names[i]].revenue != buckets[names[j]].revenue {
			return buckets[names[i]].revenue > buckets[names[j]].revenue
		}
		return names[i] < names[j]
	})

	sources := make([]gin.H, 0, len(names))
	for _, name := range names {
		sources = append(sources, gin.H{
			"source":  name,
			"orders":  buckets[name].orders,
			"revenue": round2(buckets[name].revenue),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sources": sources})
}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// GetHeatmap buckets the last 7 days of orders by weekday and hour of
// day, and points at the busiest of each. With no orders the defaults
// are Monday / 12.
func (h *Handler) GetHeatmap(c *gin.Context) {
	rid := middleware.GetRestaurantID(c)
	since := time.Now().UTC().AddDate(0, 0, -7)

	var orders []models.Order
	h.DB.Where("restaurant_id = ? AND created_at >= ?", rid, since).Find(&orders)

	byDay := map[string]int{}
	for _, day := range weekdays {
		byDay[day] = 0
	}
	byHour := make([]int, 24)
	for _, o := range orders {
		ts := o.CreatedAt.UTC()
		byDay[ts.Weekday().String()]++
		byHour[ts.Hour()]++
	}

	bestDay := "Monday"
	for _, day := range weekdays {
		if byDay[day] > byDay[bestDay] {
			bestDay = day
		}
	}
	bestHour := 12
	if len(orders) > 0 {
		bestHour = 0
		for hour := 1; hour < 24; hour++ {
			if byHour[hour] > byHour[bestHour] {
				bestHour = hour
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"heatmap": gin.H{
			"by_day":    byDay,
			"by_hour":   byHour,
			"best_day":  bestDay,
			"best_hour": bestHour,
		},
	})
}
