package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/middleware"
	"github.com/cadefab1n/appsevenmenu/models"
)

type CategoryCreateRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	Image       string                   `json:"image"`
	Order       int                      `json:"order"`
	ParentID    *uint                    `json:"parent_id"`
	Schedule    *models.CategorySchedule `json:"schedule"`
}

// NullableUint tells an absent patch field apart from an explicit
// null, so a nullable reference can be cleared and not just set.
type NullableUint struct {
	Set   bool
	Value *uint
}

func (n *NullableUint) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

type CategoryPatch struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Icon        *string                  `json:"icon"`
	Image       *string                  `json:"image"`
	Order       *int                     `json:"order"`
	ParentID    NullableUint             `json:"parent_id"`
	Schedule    *models.CategorySchedule `json:"schedule"`
	IsActive    *bool                    `json:"is_active"`
}

func (p *CategoryPatch) Apply(cat *models.Category) []string {
	var cols []string
	if p.Name != nil {
		cat.Name = *p.Name
		cols = append(cols, "name")
	}
	if p.Description != nil {
		cat.Description = *p.Description
		cols = append(cols, "description")
	}
	if p.Icon != nil {
		cat.Icon = *p.Icon
		cols = append(cols, "icon")
	}
	if p.Image != nil {
		cat.Image = *p.Image
		cols = append(cols, "image")
	}
	if p.Order != nil {
		cat.SortOrder = *p.Order
		cols = append(cols, "sort_order")
	}
	if p.ParentID.Set {
		cat.ParentID = p.ParentID.Value
		cols = append(cols, "parent_id")
	}
	if p.Schedule != nil {
		cat.Schedule = p.Schedule
		cols = append(cols, "schedule")
	}
	if p.IsActive != nil {
		cat.IsActive = *p.IsActive
		cols = append(cols, "is_active")
	}
	return cols
}

// ListCategories returns the tenant's categories in menu order.
func (h *Handler) ListCategories(c *gin.Context) {
	categories := []models.Category{}
	h.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		Order("sort_order asc, created_at asc").
		Find(&categories)
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	category := models.Category{
		RestaurantID: middleware.GetRestaurantID(c),
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		Image:        req.Image,
		SortOrder:    req.Order,
		ParentID:     req.ParentID,
		Schedule:     req.Schedule,
		IsActive:     true,
	}
	if err := h.DB.Create(&category).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao criar categoria")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	category, ok := h.findCategory(c)
	if !ok {
		return
	}

	var patch CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if cols := patch.Apply(category); len(cols) > 0 {
		if err := h.DB.Model(category).Select(cols).Updates(category).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Erro ao atualizar categoria")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// DeleteCategory refuses to delete a category that still owns products.
func (h *Handler) DeleteCategory(c *gin.Context) {
	category, ok := h.findCategory(c)
	if !ok {
		return
	}

	var products int64
	h.DB.Model(&models.Product{}).
		Where("category_id = ? AND restaurant_id = ?", category.ID, category.RestaurantID).
		Count(&products)
	if products > 0 {
		fail(c, http.StatusBadRequest, "Categoria possui produtos")
		return
	}

	if err := h.DB.Delete(category).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao excluir categoria")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Categoria excluída"})
}

type ReorderItem struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// ReorderCategories applies each {id, order} pair as an independent
// point update. Not transactional: a failed item leaves the rest
// applied, callers retry.
func (h *Handler) ReorderCategories(c *gin.Context) {
	var items []ReorderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	rid := middleware.GetRestaurantID(c)
	for _, item := range items {
		h.DB.Model(&models.Category{}).
			Where("id = ? AND restaurant_id = ?", item.ID, rid).
			UpdateColumn("sort_order", item.Order)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DuplicateCategory deep-copies a category and everything under it.
// Copies start fresh: new ids, zeroed counters, current timestamps.
func (h *Handler) DuplicateCategory(c *gin.Context) {
	category, ok := h.findCategory(c)
	if !ok {
		return
	}

	copyCat := *category
	copyCat.ID = 0
	copyCat.Name = category.Name + " (cópia)"
	copyCat.CreatedAt = time.Time{}
	copyCat.UpdatedAt = time.Time{}
	if err := h.DB.Create(&copyCat).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Erro ao duplicar categoria")
		return
	}

	products := []models.Product{}
	h.DB.Where("category_id = ? AND restaurant_id = ?", category.ID, category.RestaurantID).
		Find(&products)
	for _, p := range products {
		dup := freshProductCopy(p)
		dup.CategoryID = copyCat.ID
		h.DB.Create(&dup)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": copyCat})
}

// findCategory loads a tenant-scoped category from the :id param.
// Tenant mismatch and absence are reported identically.
func (h *Handler) findCategory(c *gin.Context) (*models.Category, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	var category models.Category
	err := h.DB.Where("id = ? AND restaurant_id = ?", id, middleware.GetRestaurantID(c)).
		First(&category).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Categoria não encontrada")
		return nil, false
	}
	return &category, true
}
