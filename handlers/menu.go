package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/models"
)

// publicRestaurant resolves a slug for customer-facing paths.
// Deactivated tenants are invisible here (owners still reach theirs
// through /restaurant/me).
func (h *Handler) publicRestaurant(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := h.DB.Where("slug = ? AND is_active = ?", slug, true).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetPublicMenu is the composite read behind the QR code: restaurant
// branding plus every active category and product, in menu order.
func (h *Handler) GetPublicMenu(c *gin.Context) {
	restaurant, err := h.publicRestaurant(c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	categories := []models.Category{}
	h.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, created_at asc").
		Find(&categories)

	products := []models.Product{}
	h.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, created_at asc").
		Find(&products)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"restaurant": restaurant,
		"categories": categories,
		"products":   products,
	})
}

// ── Legacy compatibility reads (pre-slug clients) ──────────────────────

func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants := []models.Restaurant{}
	h.DB.Where("is_active = ?", true).Limit(100).Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurants": restaurants})
}

// GetRestaurant accepts a numeric id or a slug in the same path slot.
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantByIDOrSlug(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

func (h *Handler) GetRestaurantCategories(c *gin.Context) {
	restaurant, err := h.restaurantByIDOrSlug(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	categories := []models.Category{}
	h.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, created_at asc").
		Find(&categories)
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

func (h *Handler) GetRestaurantProducts(c *gin.Context) {
	restaurant, err := h.restaurantByIDOrSlug(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	products := []models.Product{}
	h.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("sort_order asc, created_at asc").
		Find(&products)
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (h *Handler) restaurantByIDOrSlug(param string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		err := h.DB.Where("id = ? AND is_active = ?", uint(id), true).First(&restaurant).Error
		if err != nil {
			return nil, err
		}
		return &restaurant, nil
	}
	return h.publicRestaurant(param)
}
