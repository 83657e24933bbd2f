package handlers

import (
	"errors"
	"net/http"

	"github.com/autohandel/backoffice/internal/access"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Notices returned by the auth endpoints.
const (
	NoticeFillAllFields = "Vul alle velden in"
	NoticeLoggedIn      = "Succesvol ingelogd"
	NoticeLoggedOut     = "Uitgelogd"
)

// LoginRequest is the login form. The password is checked for presence only.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	sessionsSvc *sessions.Service
}

func NewAuthHandler(s *sessions.Service) *AuthHandler {
	return &AuthHandler{sessionsSvc: s}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", h.Logout)
	a.GET("/session", h.Session)
}

// Login stores a new session for any non-empty username/role/password and
// returns a session token with the modules the role may open.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": NoticeFillAllFields, "details": err.Error()})
		return
	}
	sess, token, err := h.sessionsSvc.Login(c.Request.Context(), req.Username, req.Role, req.Password)
	if err != nil {
		if errors.Is(err, sessions.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": NoticeFillAllFields})
			return
		}
		logger.Errorf("login failed for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	if !access.KnownRole(sess.Role) {
		logger.Warnf("login with unknown role %q: no modules will be accessible", sess.Role)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": NoticeLoggedIn,
		"token":   token,
		"session": sess,
		"modules": access.Allowed(sess.Role),
	})
}

// Logout clears the stored session. Tokens issued for it stop resolving.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionsSvc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": NoticeLoggedOut})
}

// Session restores the stored session, as on application start.
func (h *AuthHandler) Session(c *gin.Context) {
	sess, err := h.sessionsSvc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "modules": access.Allowed(sess.Role)})
}
