package handlers

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
)

// OrderCreateRequest is the public cart submission. Items are opaque:
// stored verbatim, only product_id/price/quantity are read back out for
// the counter fan-out. Prices are client-submitted and not reconciled
// against the catalog.
type OrderCreateRequest struct {
	Items           []map[string]any `json:"items" binding:"required,min=1"`
	Subtotal        *float64         `json:"subtotal" binding:"required"`
	DeliveryFee     float64          `json:"delivery_fee"`
	Discount        float64          `json:"discount"`
	Total           *float64         `json:"total" binding:"required"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress string           `json:"customer_address"`
	PaymentMethod   string           `json:"payment_method"`
	OrderType       string           `json:"order_type"`
	Source          string           `json:"source"`
	Notes           string           `json:"notes"`
}

// CreatePublicOrder persists a cart snapshot for the restaurant behind
// the slug, then bumps the referenced products' orders_count/revenue.
// The counter step is best-effort: a failure is logged, the order
// stands.
func (h *Handler) CreatePublicOrder(c *gin.Context) {
	restaurant, err := h.publicRestaurant(c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = "delivery"
	}
	source := req.Source
	if source == "" {
		source = "direct"
	}

	order := models.Order{
		RestaurantID: restaurant.ID,
		// Display code only. 4 random digits, collisions accepted.
		OrderNumber:     fmt.Sprintf("#%d", 1000+rand.Intn(9000)),
		Items:           req.Items,
		Subtotal:        *req.Subtotal,
		DeliveryFee:     req.DeliveryFee,
		Discount:        req.Discount,
		Total:           *req.Total,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		OrderType:       orderType,
		Status:          "pending",
		Source:          source,
		Notes:           req.Notes,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao criar pedido")
		return
	}

	// The order itself marks the end of the funnel in the event stream.
	event := models.AnalyticsEvent{
		RestaurantID: restaurant.ID,
		EventType:    models.EventOrderSent,
		Source:       order.Source,
	}
	if err := h.DB.Create(&event).Error; err != nil {
		h.Log.WithError(err).Warn("order event write failed")
	}

	for _, item := range req.Items {
		productID, ok := itemUint(item, "product_id")
		if !ok {
			continue
		}
		quantity := itemFloat(item, "quantity", 1)
		price := itemFloat(item, "price", 0)

		err := h.DB.Model(&models.Product{}).
			Where("id = ? AND restaurant_id = ?", productID, restaurant.ID).
			UpdateColumns(map[string]any{
				"orders_count": gorm.Expr("orders_count + ?", int(quantity)),
				"revenue":      gorm.Expr("revenue + ?", price*quantity),
			}).Error
		if err != nil {
			h.Log.WithError(err).WithField("product_id", productID).
				Warn("order counter update failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// ListOrders returns the tenant's latest orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	query := h.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c))
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	orders := []models.Order{}
	query.Order("created_at desc").Limit(100).Find(&orders)
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus sets the order's lifecycle label. The status is a
// free-form string; the dashboard owns the vocabulary, there is no
// enforced transition graph.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var order models.Order
	err := h.DB.Where("id = ? AND restaurant_id = ?", id, middleware.GetRestaurantID(c)).
		First(&order).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Pedido não encontrado")
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao atualizar pedido")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status atualizado"})
}

// itemUint reads a numeric field out of a decoded JSON object, where
// numbers arrive as float64.
func itemUint(item map[string]any, key string) (uint, bool) {
	v, ok := item[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return uint(n), true
	default:
		return 0, false
	}
}

func itemFloat(item map[string]any, key string, fallback float64) float64 {
	if v, ok := item[key]; ok {
		if n, ok := v.(float64); ok {
			return n
		}
	}
	return fallback
}
