package devserver

import (
	"fmt"
	"net/http"
	"time"

	"fridgechef/internal/devserver/store"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the backend contract the client consumes: session probe,
// auth, and quota-gated generation.
type Handler struct {
	cfg      *config.Config
	users    store.UserStore
	usage    store.UsageStore
	sessions *sessions
	now      func() time.Time
}

// NewHandler wires a dev server handler over the given stores.
func NewHandler(cfg *config.Config, users store.UserStore, usage store.UsageStore) *Handler {
	return &Handler{
		cfg:      cfg,
		users:    users,
		usage:    usage,
		sessions: newSessions(),
		now:      time.Now,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type generateRequest struct {
	Ingredients string          `json:"ingredients"`
	Notes       string          `json:"notes"`
	Filters     map[string]bool `json:"filters"`
	Limit       int             `json:"limit"`
}

func (h *Handler) day() string {
	return h.now().Format("2006-01-02")
}

func (h *Handler) currentUser(c *gin.Context) (string, bool) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	return h.sessions.lookup(token)
}

// Signup registers an account. It does not log the account in.
func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	username := common.NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	if err := h.users.Create(c.Request.Context(), username, req.Password); err != nil {
		if err == store.ErrUserExists {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		common.LogError("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Login verifies credentials and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	username := common.NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	ok, err := h.users.Authenticate(c.Request.Context(), username, req.Password)
	if err != nil {
		common.LogError("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := h.sessions.open(username)
	c.SetCookie(sessionCookie, token, int((7 * 24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "username": username})
}

// Logout clears the session.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		h.sessions.close(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me is the session probe: the current identity and usage snapshot, or a
// null user when no session exists.
func (h *Handler) Me(c *gin.Context) {
	username, ok := h.currentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	used, err := h.usage.UsedToday(c.Request.Context(), username, h.day())
	if err != nil {
		common.LogError("usage lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       username,
		"used_today": used,
		"limit":      h.cfg.Quota.DailyLimit,
	})
}

// Generate produces recipes if the caller is authenticated and under the
// daily limit; at the limit it answers 402 with a checkout URL for the
// client's upsell path.
func (h *Handler) Generate(c *gin.Context) {
	username, ok := h.currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no ingredients provided"})
		return
	}
	if req.Ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no ingredients provided"})
		return
	}

	used, err := h.usage.UsedToday(c.Request.Context(), username, h.day())
	if err != nil {
		common.LogError("usage lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if used >= h.cfg.Quota.DailyLimit {
		checkoutURL := fmt.Sprintf("%s?amount=%s&ref=%s",
			h.cfg.Quota.CheckoutBase, h.cfg.Quota.PaywallAmount, username)

		common.LogInfo("daily limit reached",
			zap.String("username", username),
			zap.Int("used", used),
		)
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":        "limit_reached",
			"message":      "Daily limit reached. Complete payment to unlock more recipes.",
			"checkout_url": checkoutURL,
			"amount":       h.cfg.Quota.PaywallAmount,
		})
		return
	}

	recipes := cookRecipes(req.Ingredients, req.Notes, req.Filters, req.Limit)

	newUsed, err := h.usage.Increment(c.Request.Context(), username, h.day())
	if err != nil {
		common.LogError("usage increment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":    recipes,
		"used_today": newUsed,
		"limit":      h.cfg.Quota.DailyLimit,
	})
}
