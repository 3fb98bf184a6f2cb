package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
)

type ProductCreateRequest struct {
	CategoryID           uint                    `json:"category_id" binding:"required"`
	Name                 string                  `json:"name" binding:"required"`
	Description          string                  `json:"description"`
	Price                float64                 `json:"price" binding:"required,gt=0"`
	PromoPrice           *float64                `json:"promo_price"`
	PromoUntil           *time.Time              `json:"promo_until"`
	Image                string                  `json:"image"`
	Gallery              []string                `json:"gallery"`
	IsFeatured           bool                    `json:"is_featured"`
	FeaturedTag          string                  `json:"featured_tag"`
	Order                int                     `json:"order"`
	Variations           []models.VariationGroup `json:"variations"`
	RemovableIngredients []string                `json:"removable_ingredients"`
	StockEnabled         bool                    `json:"stock_enabled"`
	StockQuantity        int                     `json:"stock_quantity"`
}

type ProductPatch struct {
	CategoryID           *uint                    `json:"category_id"`
	Name                 *string                  `json:"name"`
	Description          *string                  `json:"description"`
	Price                *float64                 `json:"price"`
	PromoPrice           *float64                 `json:"promo_price"`
	PromoUntil           *time.Time               `json:"promo_until"`
	Image                *string                  `json:"image"`
	Gallery              *[]string                `json:"gallery"`
	IsActive             *bool                    `json:"is_active"`
	IsFeatured           *bool                    `json:"is_featured"`
	FeaturedTag          *string                  `json:"featured_tag"`
	Order                *int                     `json:"order"`
	Variations           *[]models.VariationGroup `json:"variations"`
	RemovableIngredients *[]string                `json:"removable_ingredients"`
	StockEnabled         *bool                    `json:"stock_enabled"`
	StockQuantity        *int                     `json:"stock_quantity"`
}

func (p *ProductPatch) Apply(prod *models.Product) []string {
	var cols []string
	if p.CategoryID != nil {
		prod.CategoryID = *p.CategoryID
		cols = append(cols, "category_id")
	}
	if p.Name != nil {
		prod.Name = *p.Name
		cols = append(cols, "name")
	}
	if p.Description != nil {
		prod.Description = *p.Description
		cols = append(cols, "description")
	}
	if p.Price != nil {
		prod.Price = *p.Price
		cols = append(cols, "price")
	}
	if p.PromoPrice != nil {
		prod.PromoPrice = p.PromoPrice
		cols = append(cols, "promo_price")
	}
	if p.PromoUntil != nil {
		prod.PromoUntil = p.PromoUntil
		cols = append(cols, "promo_until")
	}
	if p.Image != nil {
		prod.Image = *p.Image
		cols = append(cols, "image")
	}
	if p.Gallery != nil {
		prod.Gallery = *p.Gallery
		cols = append(cols, "gallery")
	}
	if p.IsActive != nil {
		prod.IsActive = *p.IsActive
		cols = append(cols, "is_active")
	}
	if p.IsFeatured != nil {
		prod.IsFeatured = *p.IsFeatured
		cols = append(cols, "is_featured")
	}
	if p.FeaturedTag != nil {
		prod.FeaturedTag = *p.FeaturedTag
		cols = append(cols, "featured_tag")
	}
	if p.Order != nil {
		prod.SortOrder = *p.Order
		cols = append(cols, "sort_order")
	}
	if p.Variations != nil {
		prod.Variations = *p.Variations
		cols = append(cols, "variations")
	}
	if p.RemovableIngredients != nil {
		prod.RemovableIngredients = *p.RemovableIngredients
		cols = append(cols, "removable_ingredients")
	}
	if p.StockEnabled != nil {
		prod.StockEnabled = *p.StockEnabled
		cols = append(cols, "stock_enabled")
	}
	if p.StockQuantity != nil {
		prod.StockQuantity = *p.StockQuantity
		cols = append(cols, "stock_quantity")
	}
	return cols
}

// ListProducts returns the tenant's products, optionally filtered by
// category, in menu order.
func (h *Handler) ListProducts(c *gin.Context) {
	query := h.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c))
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	products := []models.Product{}
	query.Order("sort_order asc, created_at asc").Find(&products)
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// CreateProduct creates a product under one of the tenant's own
// categories. A category from another tenant is an invalid reference.
func (h *Handler) CreateProduct(c *gin.Context) {
	rid := middleware.GetRestaurantID(c)

	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND restaurant_id = ?", req.CategoryID, rid).
		First(&category).Error; err != nil {
		fail(c, http.StatusBadRequest, "Categoria inválida")
		return
	}

	product := models.Product{
		RestaurantID:         rid,
		CategoryID:           req.CategoryID,
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		PromoPrice:           req.PromoPrice,
		PromoUntil:           req.PromoUntil,
		Image:                req.Image,
		Gallery:              req.Gallery,
		IsActive:             true,
		IsFeatured:           req.IsFeatured,
		FeaturedTag:          req.FeaturedTag,
		SortOrder:            req.Order,
		Variations:           req.Variations,
		RemovableIngredients: req.RemovableIngredients,
		StockEnabled:         req.StockEnabled,
		StockQuantity:        req.StockQuantity,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao criar produto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	product, ok := h.findProduct(c)
	if !ok {
		return
	}

	var patch ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	// Moving the product to another category keeps the tenant fence.
	if patch.CategoryID != nil {
		var category models.Category
		if err := h.DB.Where("id = ? AND restaurant_id = ?", *patch.CategoryID, product.RestaurantID).
			First(&category).Error; err != nil {
			fail(c, http.StatusBadRequest, "Categoria inválida")
			return
		}
	}

	if cols := patch.Apply(product); len(cols) > 0 {
		if err := h.DB.Model(product).Select(cols).Updates(product).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Erro ao atualizar produto")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	product, ok := h.findProduct(c)
	if !ok {
		return
	}
	if err := h.DB.Delete(product).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao excluir produto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produto excluído"})
}

// ToggleProduct flips is_active and returns the new value. This is a
// flip, not a set: blind retries alternate the state.
func (h *Handler) ToggleProduct(c *gin.Context) {
	product, ok := h.findProduct(c)
	if !ok {
		return
	}
	product.IsActive = !product.IsActive
	if err := h.DB.Model(product).UpdateColumn("is_active", product.IsActive).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao atualizar produto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_active": product.IsActive})
}

// DuplicateProduct copies a product with fresh identity and zeroed
// counters.
func (h *Handler) DuplicateProduct(c *gin.Context) {
	product, ok := h.findProduct(c)
	if !ok {
		return
	}

	dup := freshProductCopy(*product)
	dup.Name = product.Name + " (cópia)"
	if err := h.DB.Create(&dup).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao duplicar produto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": dup})
}

// ReorderProducts applies independent per-item sort updates, like
// ReorderCategories.
func (h *Handler) ReorderProducts(c *gin.Context) {
	var items []ReorderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	rid := middleware.GetRestaurantID(c)
	for _, item := range items {
		h.DB.Model(&models.Product{}).
			Where("id = ? AND restaurant_id = ?", item.ID, rid).
			UpdateColumn("sort_order", item.Order)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) findProduct(c *gin.Context) (*models.Product, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	var product models.Product
	err := h.DB.Where("id = ? AND restaurant_id = ?", id, middleware.GetRestaurantID(c)).
		First(&product).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Produto não encontrado")
		return nil, false
	}
	return &product, true
}

// freshProductCopy resets identity, counters and timestamps on a copy.
// The caller decides the name.
func freshProductCopy(p models.Product) models.Product {
	p.ID = 0
	p.Views = 0
	p.Clicks = 0
	p.CartAdds = 0
	p.OrdersCount = 0
	p.Revenue = 0
	p.CreatedAt = time.Time{}
	p.UpdatedAt = time.Time{}
	return p
}
