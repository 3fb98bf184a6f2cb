package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeForOwnMenu(t *testing.T) {
	r, _ := newTestServer(t)
	token, restaurant := registerTenant(t, r, "Bob's Burgers")

	code, resp := do(t, r, http.MethodGet, "/api/restaurant/qrcode", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "https://menu.test/"+restaurant["slug"].(string), resp["url"])
	assert.True(t, strings.HasPrefix(resp["qr_code"].(string), "data:image/png;base64,"))
}

func TestQRCodeRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)
	code, _ := do(t, r, http.MethodGet, "/api/restaurant/qrcode", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
