package models

import "time"

// Recognized analytics event types. The column is an open string; the
// menu frontend may send others, they are stored as-is.
const (
	EventPageView      = "page_view"
	EventProductView   = "product_view"
	EventAddToCart     = "add_to_cart"
	EventProductClick  = "product_click"
	EventCheckoutClick = "checkout_click"
	EventOrderSent     = "order_sent"
)

// AnalyticsEvent is write-once: ingested from the public menu, read only
// in aggregate for dashboards.
type AnalyticsEvent struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	EventType    string         `json:"event_type" gorm:"not null"`
	ProductID    *uint          `json:"product_id"`
	CategoryID   *uint          `json:"category_id"`
	Source       string         `json:"source"`
	Metadata     map[string]any `json:"metadata" gorm:"serializer:json"`
	CreatedAt    time.Time      `json:"created_at"`
}
