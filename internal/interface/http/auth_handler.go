package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pujakart/auth-service/internal/application"
	"github.com/pujakart/auth-service/pkg/response"
	"github.com/pujakart/auth-service/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type otpRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type otpVerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// Signup POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password required", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"ok": true, "id": id}, "account created")
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password required", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "id": res.ID, "token": res.Token}, "login successful")
}

// RequestOTP POST /api/otp/request
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "phone required", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.RequestOTP(c.Request.Context(), req.Phone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	data := gin.H{"ok": true}
	if res.DevMode {
		// dev convenience: echo the code so the flow is testable without a
		// real SMS provider
		data["otp"] = res.Code
	}
	response.Success(c, http.StatusOK, data, "code sent")
}

// VerifyOTP POST /api/otp/verify
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req otpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "phone and code required", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "id": res.ID, "token": res.Token}, "login successful")
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "user already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrInvalidOTP):
		response.Error(c, http.StatusUnauthorized, "invalid or expired code", nil)
	case errors.Is(err, application.ErrDelivery):
		response.Error(c, http.StatusBadGateway, "message delivery failed", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("auth operation failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
