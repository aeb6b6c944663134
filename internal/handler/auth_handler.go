package handler

import (
	"net/http"

	"losmecanics_booking/internal/service"
	"losmecanics_booking/internal/view"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and signup requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.resolve(c, false)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	h.resolve(c, true)
}

func (h *AuthHandler) resolve(c *gin.Context, isSignup bool) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, token, err := h.service.Resolve(c.Request.Context(), req.Email, req.Password, isSignup, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve identity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"session": session,
		"token":   token,
		"page":    view.DashboardFor(session),
	})
}

// Logout acknowledges the end of a session. Tokens are stateless, so the
// client simply discards its copy; nothing is revoked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
		"page":    "home",
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, rateLimitMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	if rateLimitMW != nil {
		authGroup.Use(rateLimitMW)
	}
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/logout", h.Logout)
	}
}
