package models

import "time"

// Restaurant is the tenant root. Every other entity carries its ID and
// every query against them must filter by it.
type Restaurant struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	Slug            string            `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Name            string            `json:"name" gorm:"not null"`
	Description     string            `json:"description"`
	Logo            string            `json:"logo"`   // opaque encoded blob, passed through
	Banner          string            `json:"banner"` // opaque encoded blob, passed through
	Address         string            `json:"address"`
	Whatsapp        string            `json:"whatsapp"`
	PrimaryColor    string            `json:"primary_color" gorm:"default:'#E63946'"`
	SecondaryColor  string            `json:"secondary_color" gorm:"default:'#1D3557'"`
	Font            string            `json:"font" gorm:"default:'Inter'"`
	IsOpen          bool              `json:"is_open" gorm:"default:true"`
	ClosedMessage   string            `json:"closed_message" gorm:"default:'Estamos fechados no momento'"`
	OpeningHours    map[string]string `json:"opening_hours" gorm:"serializer:json"`
	MinOrder        float64           `json:"min_order" gorm:"default:0"`
	DeliveryFee     float64           `json:"delivery_fee" gorm:"default:0"`
	PickupEnabled   bool              `json:"pickup_enabled" gorm:"default:true"`
	PaymentMethods  []string          `json:"payment_methods" gorm:"serializer:json"`
	WhatsappMessage string            `json:"whatsapp_message"`
	ThankYouMessage string            `json:"thank_you_message" gorm:"default:'Obrigado pelo pedido!'"`
	IsActive        bool              `json:"is_active" gorm:"default:true"`
	Plan            string            `json:"plan" gorm:"default:'free'"` // free, starter, pro
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
