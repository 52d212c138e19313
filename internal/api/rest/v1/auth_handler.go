package v1

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MGTheTrain/description-generator/internal/pkg/config"
)

// AuthHandler defines the interface for handling admin authentication
type AuthHandler interface {
	Login(ctx *gin.Context)
}

type authHandler struct {
	settings *config.AuthSettings
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(settings *config.AuthSettings) AuthHandler {
	return &authHandler{settings: settings}
}

// Login checks the admin credentials and issues a signed bearer token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(request.Email), []byte(handler.settings.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(request.Password), []byte(handler.settings.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	expiresAt := time.Now().Add(handler.settings.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   request.Email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte(handler.settings.SecretKey))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign token"})
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{Token: signed, ExpiresAt: expiresAt})
}
