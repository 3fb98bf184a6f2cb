package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadefab1n/appsevenmenu/models"
)

func TestRegisterCreatesTenantWithSlug(t *testing.T) {
	r, _ := newTestServer(t)

	token, restaurant := registerTenant(t, r, "Bob's Burgers")
	assert.NotEmpty(t, token)
	assert.Equal(t, "bobs-burgers", restaurant["slug"])
	assert.Equal(t, "Bob's Burgers", restaurant["name"])

	// Token works against an authenticated endpoint.
	code, resp := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "bobs-burgers", resp["restaurant"].(map[string]any)["slug"])
}

func TestRegisterSlugCollisionSuffix(t *testing.T) {
	r, _ := newTestServer(t)

	_, first := registerTenant(t, r, "Bob's Burgers")
	_, second := registerTenant(t, r, "Bob's Burgers")
	_, third := registerTenant(t, r, "Bob's Burgers")

	assert.Equal(t, "bobs-burgers", first["slug"])
	assert.Equal(t, "bobs-burgers-1", second["slug"])
	assert.Equal(t, "bobs-burgers-2", third["slug"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	body := gin.H{
		"email":           "dup@example.com",
		"password":        "segredo123",
		"name":            "Owner",
		"restaurant_name": "Cantina",
	}
	code, _ := do(t, r, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, code)

	code, resp := do(t, r, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email já cadastrado", resp["detail"])
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)

	do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":           "login@example.com",
		"password":        "segredo123",
		"name":            "Owner",
		"restaurant_name": "Cantina",
	})

	code, resp := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, resp["token"])

	code, resp = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Email ou senha incorretos", resp["detail"])
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestServer(t)

	code, resp := do(t, r, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Não autorizado", resp["detail"])

	code, resp = do(t, r, http.MethodGet, "/api/categories", "nonsense-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Token inválido", resp["detail"])
}

func TestValidTokenForRemovedUser(t *testing.T) {
	r, db := newTestServer(t)

	token, _ := registerTenant(t, r, "Cantina Fantasma")
	require.NoError(t, db.Where("email LIKE ?", "%@example.com").Delete(&models.User{}).Error)

	code, resp := do(t, r, http.MethodGet, "/api/categories", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Usuário não encontrado", resp["detail"])
}
