package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicMenuOnlyActiveEntries(t *testing.T) {
	r, _ := newTestServer(t)
	token, restaurant := registerTenant(t, r, "Cantina")
	slug := restaurant["slug"].(string)

	burgers := createCategory(t, r, token, "Burgers")
	hidden := createCategory(t, r, token, "Escondida")
	do(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", hidden), token, gin.H{"is_active": false})

	visible := createProduct(t, r, token, burgers, "Cheeseburger", 12.50)
	paused := createProduct(t, r, token, burgers, "Pausado", 9.90)
	do(t, r, http.MethodPatch, fmt.Sprintf("/api/products/%d/toggle", paused), token, nil)

	code, resp := do(t, r, http.MethodGet, "/api/menu/"+slug, "", nil)
	require.Equal(t, http.StatusOK, code)

	categories := resp["categories"].([]any)
	require.Len(t, categories, 1)
	assert.Equal(t, "Burgers", categories[0].(map[string]any)["name"])

	products := resp["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, float64(visible), products[0].(map[string]any)["id"])

	assert.Equal(t, slug, resp["restaurant"].(map[string]any)["slug"])
}

func TestPublicMenuUnknownSlug(t *testing.T) {
	r, _ := newTestServer(t)
	code, resp := do(t, r, http.MethodGet, "/api/menu/nao-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Restaurante não encontrado", resp["detail"])
}

func TestDeactivatedRestaurantHiddenPubliclyVisibleToOwner(t *testing.T) {
	r, _ := newTestServer(t)
	token, restaurant := registerTenant(t, r, "Cantina")
	slug := restaurant["slug"].(string)

	code, _ := do(t, r, http.MethodPut, "/api/restaurant/me", token, gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, code)

	// Customers can no longer reach the menu.
	code, _ = do(t, r, http.MethodGet, "/api/menu/"+slug, "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// The owner still sees their restaurant and can reactivate it.
	code, resp := do(t, r, http.MethodGet, "/api/restaurant/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["restaurant"].(map[string]any)["is_active"])

	do(t, r, http.MethodPut, "/api/restaurant/me", token, gin.H{"is_active": true})
	code, _ = do(t, r, http.MethodGet, "/api/menu/"+slug, "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRestaurantPartialUpdate(t *testing.T) {
	r, _ := newTestServer(t)
	token, _ := registerTenant(t, r, "Cantina")

	code, resp := do(t, r, http.MethodPut, "/api/restaurant/me", token, gin.H{
		"delivery_fee":  5.5,
		"opening_hours": gin.H{"seg": "18:00-23:00"},
	})
	require.Equal(t, http.StatusOK, code)
	restaurant := resp["restaurant"].(map[string]any)
	assert.Equal(t, 5.5, restaurant["delivery_fee"])
	assert.Equal(t, "18:00-23:00", restaurant["opening_hours"].(map[string]any)["seg"])
	// Untouched fields keep their values.
	assert.Equal(t, "Cantina", restaurant["name"])
	assert.Equal(t, true, restaurant["pickup_enabled"])
}

func TestLegacyRestaurantLookupByIDOrSlug(t *testing.T) {
	r, _ := newTestServer(t)
	_, restaurant := registerTenant(t, r, "Cantina")
	id := restaurant["id"].(float64)
	slug := restaurant["slug"].(string)

	code, resp := do(t, r, http.MethodGet, fmt.Sprintf("/api/restaurants/%d", int(id)), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, slug, resp["restaurant"].(map[string]any)["slug"])

	code, resp = do(t, r, http.MethodGet, "/api/restaurants/"+slug, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, resp["restaurant"].(map[string]any)["id"])
}
