package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logiteam/logiteam-api/internal/models"
	"github.com/logiteam/logiteam-api/internal/service/identity"
	"github.com/logiteam/logiteam-api/pkg/logger"
)

// IdentityService interface for authentication operations.
type IdentityService interface {
	Register(ctx context.Context, in identity.RegisterInput) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (string, *models.Profile, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	identity IdentityService
	log      *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity IdentityService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{identity: identity, log: log}
}

// Register creates a new employee account.
// POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in identity.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.identity.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a bearer token.
// POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, profile, err := h.identity.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "profile": profile})
}

// Me returns the authenticated actor.
// GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	c.JSON(http.StatusOK, actor)
}
