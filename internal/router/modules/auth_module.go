package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pujakart/auth-service/internal/container"
	handlers "github.com/pujakart/auth-service/internal/interface/http"
	"github.com/pujakart/auth-service/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; limits are tightest on
	// OTP request since each call costs an SMS.
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	otpRequestLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	otpVerifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/otp/request", otpRequestLimiter, m.Handler.RequestOTP)
	rg.POST("/otp/verify", otpVerifyLimiter, m.Handler.VerifyOTP)
}
