//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/description-generator/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthSettings() *config.AuthSettings {
	return &config.AuthSettings{
		SecretKey:     "0123456789abcdef0123456789abcdef",
		AdminEmail:    "admin@example.com",
		AdminPassword: "password123",
		TokenTTL:      time.Hour,
	}
}

func loginToken(t *testing.T, settings *config.AuthSettings) string {
	t.Helper()

	handler := NewAuthHandler(settings)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/login", LoginRequest{
		Email:    settings.AdminEmail,
		Password: settings.AdminPassword,
	})

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)

	var response LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func TestAuthHandler_Login_Success(t *testing.T) {
	token := loginToken(t, testAuthSettings())
	assert.NotEmpty(t, token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(testAuthSettings())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(testAuthSettings())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, "POST", "/login", LoginRequest{Email: "admin@example.com"})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAuth_AcceptsIssuedToken(t *testing.T) {
	settings := testAuthSettings()
	token := loginToken(t, settings)

	r := gin.New()
	r.GET("/protected", RequireAuth(settings), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user")})
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestRequireAuth_RejectsMissingToken(t *testing.T) {
	r := gin.New()
	r.GET("/protected", RequireAuth(testAuthSettings()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RejectsForeignToken(t *testing.T) {
	other := testAuthSettings()
	other.SecretKey = "ffffffffffffffffffffffffffffffff"
	token := loginToken(t, other)

	r := gin.New()
	r.GET("/protected", RequireAuth(testAuthSettings()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
