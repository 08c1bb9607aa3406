package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fridgechef/internal/devserver/store"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
}

func testConfig() *config.Config {
	return &config.Config{
		Quota: config.QuotaConfig{
			DailyLimit:    2,
			PaywallAmount: "50",
			CheckoutBase:  "https://pay.example/checkout",
		},
	}
}

type harness struct {
	t       *testing.T
	router  *gin.Engine
	handler *Handler
	cookies []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	cfg := testConfig()
	handler := NewHandler(cfg, store.NewMemoryUsers(), store.NewMemoryUsage())

	router := gin.New()
	api := router.Group("/api")
	api.GET("/me", handler.Me)
	api.POST("/signup", handler.Signup)
	api.POST("/login", handler.Login)
	api.POST("/logout", handler.Logout)
	api.POST("/generate", handler.Generate)

	return &harness{t: t, router: router, handler: handler}
}

func (h *harness) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range h.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		h.cookies = set
	}
	return w
}

func (h *harness) signupAndLogin(username string) {
	w := h.do(http.MethodPost, "/api/signup", gin.H{"username": username, "password": "pw"})
	require.Equal(h.t, http.StatusOK, w.Code)

	w = h.do(http.MethodPost, "/api/login", gin.H{"username": username, "password": "pw"})
	require.Equal(h.t, http.StatusOK, w.Code)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignupValidation(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/signup", gin.H{"username": "", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/signup", gin.H{"username": "ada", "password": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateConflicts(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/signup", gin.H{"username": "ada", "password": "pw"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodPost, "/api/signup", gin.H{"username": "Ada", "password": "other"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username already exists", decodeBody(t, w)["error"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodPost, "/api/signup", gin.H{"username": "ada", "password": "pw"})

	w := h.do(http.MethodPost, "/api/login", gin.H{"username": "ada", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/login", gin.H{"username": "nobody", "password": "pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	h := newHarness(t)
	h.do(http.MethodPost, "/api/signup", gin.H{"username": "ada", "password": "pw"})

	w := h.do(http.MethodPost, "/api/login", gin.H{"username": "ada", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected %s cookie", sessionCookie)
}

func TestMeAnonymous(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Nil(t, body["user"])
	assert.NotContains(t, body, "used_today")
}

func TestMeAuthenticatedReportsUsage(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	w := h.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ada", body["user"])
	assert.Equal(t, float64(0), body["used_today"])
	assert.Equal(t, float64(2), body["limit"])

	h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})

	w = h.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, float64(1), decodeBody(t, w)["used_today"])
}

func TestLogoutClearsSession(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	w := h.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/me", nil)
	assert.Nil(t, decodeBody(t, w)["user"])
}

func TestGenerateRequiresAuth(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "auth required", decodeBody(t, w)["error"])
}

func TestGenerateRequiresIngredients(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no ingredients provided", decodeBody(t, w)["error"])
}

func TestGenerateReturnsRecipesAndCountsUsage(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs, cheese", "limit": 3})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	recipes, ok := body["recipes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, recipes, 3)
	assert.Equal(t, float64(1), body["used_today"])
	assert.Equal(t, float64(2), body["limit"])
}

func TestGenerateAtLimitAnswersPaymentRequired(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	for i := 0; i < 2; i++ {
		w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "limit_reached", body["error"])
	assert.Equal(t, "Daily limit reached. Complete payment to unlock more recipes.", body["message"])
	assert.Equal(t, "https://pay.example/checkout?amount=50&ref=ada", body["checkout_url"])
	assert.Equal(t, "50", body["amount"])
}

func TestGenerateQuotaResetsNextDay(t *testing.T) {
	h := newHarness(t)
	h.signupAndLogin("ada")

	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	h.handler.now = func() time.Time { return today }

	for i := 0; i < 2; i++ {
		w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	h.handler.now = func() time.Time { return today.Add(24 * time.Hour) }

	w = h.do(http.MethodPost, "/api/generate", gin.H{"ingredients": "eggs"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["used_today"])
}
