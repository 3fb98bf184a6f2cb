package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
	"github.com/cadefab1n/appsevenmenu/slug"
)

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Name           string `json:"name" binding:"required"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register signs up a new tenant: restaurant (with a fresh slug) plus
// its owner user, and returns a ready-to-use token.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Email já cadastrado")
		return
	}

	restaurant := models.Restaurant{
		Slug: slug.Unique(req.RestaurantName, func(s string) bool {
			var count int64
			h.DB.Model(&models.Restaurant{}).Where("slug = ?", s).Count(&count)
			return count > 0
		}),
		Name:            req.RestaurantName,
		WhatsappMessage: "Olá! Gostaria de fazer um pedido no " + req.RestaurantName + ".",
		IsOpen:          true,
		IsActive:        true,
		PickupEnabled:   true,
		PaymentMethods:  []string{"pix", "dinheiro", "cartao"},
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao criar restaurante")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao processar senha")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         "owner",
		RestaurantID: restaurant.ID,
		IsActive:     true,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	token, err := middleware.GenerateToken(&user, h.Cfg.Secret())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"user":       userPayload(&user),
		"restaurant": restaurant,
	})
}

// Login authenticates an owner/staff user.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}
	if !user.IsActive {
		fail(c, http.StatusUnauthorized, "Conta desativada")
		return
	}

	token, err := middleware.GenerateToken(&user, h.Cfg.Secret())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"user":       userPayload(&user),
		"restaurant": h.restaurantOrNil(user.RestaurantID),
	})
}

// Me returns the authenticated caller and their restaurant.
func (h *Handler) Me(c *gin.Context) {
	var user models.User
	if err := h.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "Usuário não encontrado")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"user":       userPayload(&user),
		"restaurant": h.restaurantOrNil(user.RestaurantID),
	})
}

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
}

func (h *Handler) restaurantOrNil(id uint) any {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, id).Error; err != nil {
		return nil
	}
	return restaurant
}
