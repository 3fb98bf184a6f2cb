package models

import "time"

// Order captures an immutable snapshot of a public-menu cart. Items are
// stored verbatim as submitted; the menu frontend owns their shape, the
// backend only reads product_id/price/quantity out of them for counters.
type Order struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	RestaurantID    uint             `json:"restaurant_id" gorm:"not null;index"`
	OrderNumber     string           `json:"order_number" gorm:"size:20"` // display code, not unique
	Items           []map[string]any `json:"items" gorm:"serializer:json;not null"`
	Subtotal        float64          `json:"subtotal" gorm:"not null"`
	DeliveryFee     float64          `json:"delivery_fee" gorm:"default:0"`
	Discount        float64          `json:"discount" gorm:"default:0"`
	Total           float64          `json:"total" gorm:"not null"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress string           `json:"customer_address"`
	PaymentMethod   string           `json:"payment_method"`
	OrderType       string           `json:"order_type" gorm:"default:'delivery'"` // delivery, pickup
	Status          string           `json:"status" gorm:"default:'pending'"`
	Source          string           `json:"source" gorm:"default:'direct'"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
