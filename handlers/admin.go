package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaudel/folio/internal/config"
	"github.com/apaudel/folio/internal/content/service"
	"github.com/apaudel/folio/internal/sessions"
	"github.com/apaudel/folio/pkg/metrics"
	"github.com/apaudel/folio/pkg/middleware"
)

// AdminHandler owns the session lifecycle and the authenticated
// content-editing endpoints.
type AdminHandler struct {
	cfg      *config.AdminConfig
	content  *service.Service
	sessions *sessions.Service
}

func NewAdminHandler(cfg *config.AdminConfig, content *service.Service, s *sessions.Service) *AdminHandler {
	return &AdminHandler{cfg: cfg, content: content, sessions: s}
}

// Register mounts the admin routes. loginLimiter may be nil when rate
// limiting is disabled. The auth gate runs before any store access on
// the protected routes.
func (h *AdminHandler) Register(rg *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	a := rg.Group("/admin")
	a.GET("/session", h.SessionStatus)
	if loginLimiter != nil {
		a.POST("/login", loginLimiter, h.Login)
	} else {
		a.POST("/login", h.Login)
	}
	a.POST("/logout", h.Logout)

	gated := a.Group("/", middleware.RequireAdmin(h.sessions))
	gated.GET("/content", h.GetContent)
	gated.PUT("/content", h.SaveContent)
}

// LoginRequest is the admin credential submission.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionStatus reports whether the caller holds a live session. It
// never fails: an invalid cookie simply means authenticated=false.
func (h *AdminHandler) SessionStatus(c *gin.Context) {
	authenticated := false
	if value, err := c.Cookie(sessions.CookieName); err == nil {
		token, rerr := h.sessions.Resolve(c.Request.Context(), value)
		authenticated = rerr == nil && token != ""
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "authenticated": authenticated})
}

// Login checks the configured credentials and, on match, issues a
// session cookie. Both comparisons are constant time, and the response
// for a wrong username is identical to a wrong password.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	// a malformed body is treated like wrong credentials
	_ = c.ShouldBindJSON(&req)

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.Username))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Password))
	if userOK&passOK != 1 {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	value, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		fail(c, http.StatusInternalServerError, "Failed to create session.")
		return
	}
	metrics.LoginAttempts.WithLabelValues("accepted").Inc()
	h.setSessionCookie(c, value, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout clears the cookie and evicts the server-side session entry,
// so the raw token cannot be replayed until natural expiry. Never
// fails, even without a cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	if value, err := c.Cookie(sessions.CookieName); err == nil {
		_ = h.sessions.Destroy(c.Request.Context(), value)
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetContent is the authenticated read used by the editor; same
// payload as the public route.
func (h *AdminHandler) GetContent(c *gin.Context) {
	doc, err := h.content.GetContent(c.Request.Context())
	if err != nil {
		failStore(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": doc})
}

// SaveContent sanitizes and persists the submitted document, echoing
// the sanitized result back so the editor can reconcile its form.
func (h *AdminHandler) SaveContent(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		metrics.ContentSaves.WithLabelValues("rejected").Inc()
		fail(c, http.StatusBadRequest, "Invalid content payload.")
		return
	}
	doc, err := h.content.SaveContent(c.Request.Context(), raw)
	if err != nil {
		metrics.ContentSaves.WithLabelValues("rejected").Inc()
		failSave(c, err)
		return
	}
	metrics.ContentSaves.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "content": doc})
}

func (h *AdminHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessions.CookieName, value, maxAge, "/", "", false, true)
}
