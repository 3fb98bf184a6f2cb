package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
	"github.com/cadefab1n/appsevenmenu/qr"
)

// GetQRCode renders the caller's public menu URL as an inline PNG.
func (h *Handler) GetQRCode(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, middleware.GetRestaurantID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "Restaurante não encontrado")
		return
	}

	menuURL := strings.TrimRight(h.Cfg.FrontendURL, "/") + "/" + restaurant.Slug
	dataURL, err := qr.DataURL(menuURL, 256)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao gerar QR code")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"qr_code": dataURL,
		"url":     menuURL,
	})
}
