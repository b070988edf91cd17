package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pujakart/auth-service/internal/application"
	"github.com/pujakart/auth-service/internal/infrastructure/memory"
	"github.com/pujakart/auth-service/pkg/sms"
	"github.com/pujakart/auth-service/pkg/validation"
)

type devGateway struct{}

func (devGateway) Send(ctx context.Context, to, body string) (sms.Result, error) {
	return sms.Result{DevMode: true}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := application.NewService(memory.NewUserStore(), memory.NewOTPStore(), devGateway{}, nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/otp/request", h.RequestOTP)
	api.POST("/otp/verify", h.VerifyOTP)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestSignupEndpoint(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, "/api/signup", gin.H{"name": "Asha", "email": "a@x.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)
	d := data(t, body)
	assert.Equal(t, true, d["ok"])
	assert.Len(t, d["id"], 16)

	// duplicate email conflicts and the collection stays unchanged
	w, _ = doJSON(t, r, "/api/signup", gin.H{"email": "a@x.com", "password": "othersecret"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupEndpointMissingFields(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "/api/signup", gin.H{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, "/api/signup", gin.H{"password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter()

	_, _ = doJSON(t, r, "/api/signup", gin.H{"email": "a@x.com", "password": "secret123"})

	w, body := doJSON(t, r, "/api/login", gin.H{"email": "a@x.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, body)
	assert.Equal(t, true, d["ok"])
	assert.Len(t, d["token"], 48)

	w, _ = doJSON(t, r, "/api/login", gin.H{"email": "a@x.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, "/api/login", gin.H{"email": "nobody@x.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOTPFlowEndpoints(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, "/api/otp/request", gin.H{"phone": "+15550001"})
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, body)
	assert.Equal(t, true, d["ok"])
	code, ok := d["otp"].(string)
	require.True(t, ok, "dev mode response should echo the otp")
	assert.Regexp(t, `^[0-9]{6}$`, code)

	w, body = doJSON(t, r, "/api/otp/verify", gin.H{"phone": "+15550001", "code": code})
	require.Equal(t, http.StatusOK, w.Code)
	d = data(t, body)
	assert.Equal(t, true, d["ok"])
	assert.Len(t, d["id"], 16)
	assert.Len(t, d["token"], 48)

	// the code is single-use
	w, _ = doJSON(t, r, "/api/otp/verify", gin.H{"phone": "+15550001", "code": code})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOTPEndpointsMissingFields(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "/api/otp/request", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, "/api/otp/verify", gin.H{"phone": "+15550001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
