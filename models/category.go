package models

import "time"

// CategorySchedule restricts a category to a daily time window.
type CategorySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`   // "HH:MM"
}

type Category struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	RestaurantID uint              `json:"restaurant_id" gorm:"not null;index"`
	ParentID     *uint             `json:"parent_id"` // optional sub-category parent
	Name         string            `json:"name" gorm:"not null"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
	Image        string            `json:"image"` // opaque encoded blob
	SortOrder    int               `json:"order" gorm:"column:sort_order;default:0"`
	Schedule     *CategorySchedule `json:"schedule" gorm:"serializer:json"`
	IsActive     bool              `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
