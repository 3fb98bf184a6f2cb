package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cadefab1n/appsevenmenu/config"
	"github.com/cadefab1n/appsevenmenu/database"
	"github.com/cadefab1n/appsevenmenu/handlers"
	"github.com/cadefab1n/appsevenmenu/routes"
)

// newTestServer spins up the full route table on an in-memory store.
// A single pooled connection keeps the :memory: database shared.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		FrontendURL: "https://menu.test",
	}

	r := gin.New()
	routes.SetupRoutes(r, handlers.New(db, cfg, log))
	return r, db
}

// do issues a JSON request and decodes the JSON response body.
func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return w.Code, resp
}

var tenantSeq int

// registerTenant signs up a fresh restaurant and returns its token and
// restaurant payload.
func registerTenant(t *testing.T, r *gin.Engine, restaurantName string) (string, map[string]any) {
	t.Helper()
	tenantSeq++
	code, resp := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":           fmt.Sprintf("owner%d@example.com", tenantSeq),
		"password":        "segredo123",
		"name":            "Owner",
		"restaurant_name": restaurantName,
	})
	require.Equal(t, http.StatusOK, code, "register failed: %v", resp)
	return resp["token"].(string), resp["restaurant"].(map[string]any)
}

// createCategory and createProduct are fixture shortcuts used all over.
func createCategory(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()
	code, resp := do(t, r, http.MethodPost, "/api/categories", token, gin.H{"name": name})
	require.Equal(t, http.StatusOK, code, "create category failed: %v", resp)
	return uint(resp["category"].(map[string]any)["id"].(float64))
}

func createProduct(t *testing.T, r *gin.Engine, token string, categoryID uint, name string, price float64) uint {
	t.Helper()
	code, resp := do(t, r, http.MethodPost, "/api/products", token, gin.H{
		"category_id": categoryID,
		"name":        name,
		"price":       price,
	})
	require.Equal(t, http.StatusOK, code, "create product failed: %v", resp)
	return uint(resp["product"].(map[string]any)["id"].(float64))
}
