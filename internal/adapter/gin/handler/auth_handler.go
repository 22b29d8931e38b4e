package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark-service/internal/usecase/auth"
	"bookmark-service/pkg/logger"
)

// AuthHandler handles HTTP requests for signup and login
type AuthHandler struct {
	uc     auth.Usecase
	errors *ErrorResponder
	log    *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, errs *ErrorResponder, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, errors: errs, log: log}
}

// Signup handles POST /auth/sign-up
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid signup request", zap.Error(err))
		h.errors.Respond(c, bindError(err))
		return
	}

	resp, err := h.uc.Signup(c.Request.Context(), auth.SignupRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{AccessToken: resp.AccessToken})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid login request", zap.Error(err))
		h.errors.Respond(c, bindError(err))
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: resp.AccessToken})
}
