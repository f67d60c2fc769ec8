package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/Zharokiecoder/GITEX2/config"
	apperrors "github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler gates the admin dashboard behind a single fixed credential
// pair. The issued token is a static, non-expiring placeholder rather than a
// real credential; this is a known trust gap accepted because the system has
// no sensitive-data protection goal beyond basic access gating.
type AuthHandler struct {
	admin config.AdminConfig
}

func NewAuthHandler(admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{admin: admin}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.GetLogger()

	var req loginRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.admin.Password)) == 1
	if !userOK || !passOK {
		log.Warnw("Admin login rejected", "username", logger.MaskSensitiveString(req.Username, 2, 0))
		_ = c.Error(apperrors.InvalidCredentials())
		return
	}

	token, err := h.issueToken()
	if err != nil {
		log.Errorw("Failed to sign admin token", "error", err)
		_ = c.Error(apperrors.InternalServerError("Failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{Success: true, Token: token})
}

// issueToken signs a token with no expiry claim.
func (h *AuthHandler) issueToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":  h.admin.Username,
		"role": "admin",
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.admin.TokenSecret))
}
