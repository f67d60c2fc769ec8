package handlers

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_WrongPassword(t *testing.T) {
	r := buildTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "token")
}

func TestLogin_UnknownUser(t *testing.T) {
	r := buildTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "root",
		"password": "gitex2024",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	r := buildTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "admin",
		"password": "gitex2024",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	tokenStr, _ := body["token"].(string)
	require.NotEmpty(t, tokenStr)

	// The placeholder token is a signed JWT without an expiry claim
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.NotContains(t, claims, "exp")
}

func TestLogin_TokenIsStable(t *testing.T) {
	r := buildTestRouter(t)

	login := func() int {
		w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
			"username": "admin",
			"password": "gitex2024",
		})
		return w.Code
	}

	assert.Equal(t, http.StatusOK, login())
	assert.Equal(t, http.StatusOK, login())
}
