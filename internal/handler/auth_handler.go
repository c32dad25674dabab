package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hardeep652/sihhackathon/internal/config"
	"github.com/hardeep652/sihhackathon/pkg/log"
	"github.com/hardeep652/sihhackathon/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues admin tokens against the configured credential.
type AuthHandler struct {
	jwtManager *token.JWTManager
	adminCfg   config.AdminConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtManager *token.JWTManager, adminCfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{jwtManager: jwtManager, adminCfg: adminCfg}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login. The password is checked against
// the bcrypt hash in the config; on success a JWT access token is returned.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "username and password are required", "data": nil})
		return
	}

	if req.Username != h.adminCfg.Username ||
		bcrypt.CompareHashAndPassword([]byte(h.adminCfg.PasswordHash), []byte(req.Password)) != nil {
		log.Warnf("[AuthHandler] failed admin login attempt for user '%s'", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "invalid credentials", "data": nil})
		return
	}

	accessToken, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		log.Error("failed to generate access token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to generate token", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    gin.H{"accessToken": accessToken},
	})
}
