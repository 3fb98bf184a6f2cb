package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
)

// RestaurantPatch is a partial update: only fields present in the
// request body are written, absent fields stay untouched. Slug and plan
// are deliberately not patchable from here.
type RestaurantPatch struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	Logo            *string            `json:"logo"`
	Banner          *string            `json:"banner"`
	Address         *string            `json:"address"`
	Whatsapp        *string            `json:"whatsapp"`
	PrimaryColor    *string            `json:"primary_color"`
	SecondaryColor  *string            `json:"secondary_color"`
	Font            *string            `json:"font"`
	IsOpen          *bool              `json:"is_open"`
	ClosedMessage   *string            `json:"closed_message"`
	OpeningHours    *map[string]string `json:"opening_hours"`
	MinOrder        *float64           `json:"min_order"`
	DeliveryFee     *float64           `json:"delivery_fee"`
	PickupEnabled   *bool              `json:"pickup_enabled"`
	PaymentMethods  *[]string          `json:"payment_methods"`
	WhatsappMessage *string            `json:"whatsapp_message"`
	ThankYouMessage *string            `json:"thank_you_message"`
	IsActive        *bool              `json:"is_active"`
}

// Apply copies present fields onto r and returns the touched columns.
func (p *RestaurantPatch) Apply(r *models.Restaurant) []string {
	var cols []string
	if p.Name != nil {
		r.Name = *p.Name
		cols = append(cols, "name")
	}
	if p.Description != nil {
		r.Description = *p.Description
		cols = append(cols, "description")
	}
	if p.Logo != nil {
		r.Logo = *p.Logo
		cols = append(cols, "logo")
	}
	if p.Banner != nil {
		r.Banner = *p.Banner
		cols = append(cols, "banner")
	}
	if p.Address != nil {
		r.Address = *p.Address
		cols = append(cols, "address")
	}
	if p.Whatsapp != nil {
		r.Whatsapp = *p.Whatsapp
		cols = append(cols, "whatsapp")
	}
	if p.PrimaryColor != nil {
		r.PrimaryColor = *p.PrimaryColor
		cols = append(cols, "primary_color")
	}
	if p.SecondaryColor != nil {
		r.SecondaryColor = *p.SecondaryColor
		cols = append(cols, "secondary_color")
	}
	if p.Font != nil {
		r.Font = *p.Font
		cols = append(cols, "font")
	}
	if p.IsOpen != nil {
		r.IsOpen = *p.IsOpen
		cols = append(cols, "is_open")
	}
	if p.ClosedMessage != nil {
		r.ClosedMessage = *p.ClosedMessage
		cols = append(cols, "closed_message")
	}
	if p.OpeningHours != nil {
		r.OpeningHours = *p.OpeningHours
		cols = append(cols, "opening_hours")
	}
	if p.MinOrder != nil {
		r.MinOrder = *p.MinOrder
		cols = append(cols, "min_order")
	}
	if p.DeliveryFee != nil {
		r.DeliveryFee = *p.DeliveryFee
		cols = append(cols, "delivery_fee")
	}
	if p.PickupEnabled != nil {
		r.PickupEnabled = *p.PickupEnabled
		cols = append(cols, "pickup_enabled")
	}
	if p.PaymentMethods != nil {
		r.PaymentMethods = *p.PaymentMethods
		cols = append(cols, "payment_methods")
	}
	if p.WhatsappMessage != nil {
		r.WhatsappMessage = *p.WhatsappMessage
		cols = append(cols, "whatsapp_message")
	}
	if p.ThankYouMessage != nil {
		r.ThankYouMessage = *p.ThankYouMessage
		cols = append(cols, "thank_you_message")
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
		cols = append(cols, "is_active")
	}
	return cols
}

// GetMyRestaurant returns the caller's own restaurant. No is_active
// filter here; an owner can see (and reactivate) a deactivated tenant.
func (h *Handler) GetMyRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, middleware.GetRestaurantID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

// UpdateMyRestaurant applies a partial profile update.
func (h *Handler) UpdateMyRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, middleware.GetRestaurantID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	var patch RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if cols := patch.Apply(&restaurant); len(cols) > 0 {
		if err := h.DB.Model(&restaurant).Select(cols).Updates(&restaurant).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Erro ao atualizar restaurante")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}
