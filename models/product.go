package models

import "time"

// VariationOption is a single selectable option inside a group.
type VariationOption struct {
	Label string  `json:"label"`
	Price float64 `json:"price"` // delta added to the base price
}

// VariationGroup describes one customization group of a product,
// e.g. "Tamanho" (single, required) or "Adicionais" (multiple, 0..3).
type VariationGroup struct {
	Label    string            `json:"label"`
	Type     string            `json:"type"` // "single" or "multiple"
	Required bool              `json:"required"`
	Min      int               `json:"min"`
	Max      int               `json:"max"`
	Options  []VariationOption `json:"options"`
}

type Product struct {
	ID                   uint             `json:"id" gorm:"primaryKey"`
	RestaurantID         uint             `json:"restaurant_id" gorm:"not null;index"`
	CategoryID           uint             `json:"category_id" gorm:"not null;index"`
	Name                 string           `json:"name" gorm:"not null"`
	Description          string           `json:"description"`
	Price                float64          `json:"price" gorm:"not null"`
	PromoPrice           *float64         `json:"promo_price"`
	PromoUntil           *time.Time       `json:"promo_until"` // promo price valid until this instant
	Image                string           `json:"image"`
	Gallery              []string         `json:"gallery" gorm:"serializer:json"`
	IsActive             bool             `json:"is_active" gorm:"default:true"`
	IsFeatured           bool             `json:"is_featured" gorm:"default:false"`
	FeaturedTag          string           `json:"featured_tag"` // e.g. "mais_vendido", "novo", "recomendado"
	SortOrder            int              `json:"order" gorm:"column:sort_order;default:0"`
	Variations           []VariationGroup `json:"variations" gorm:"serializer:json"`
	RemovableIngredients []string         `json:"removable_ingredients" gorm:"serializer:json"`
	StockEnabled         bool             `json:"stock_enabled" gorm:"default:false"`
	StockQuantity        int              `json:"stock_quantity" gorm:"default:0"`

	// Denormalized counters bumped by the order and analytics services.
	// Read-optimization fields, not authoritative ledgers.
	Views       int     `json:"views" gorm:"default:0"`
	Clicks      int     `json:"clicks" gorm:"default:0"`
	CartAdds    int     `json:"cart_adds" gorm:"default:0"`
	OrdersCount int     `json:"orders_count" gorm:"default:0"`
	Revenue     float64 `json:"revenue" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
