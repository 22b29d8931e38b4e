package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/user"
	"bookmark-service/pkg/logger"
)

// UserHandler handles HTTP requests for the caller's own profile
type UserHandler struct {
	uc     user.Usecase
	errors *ErrorResponder
	log    *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, errs *ErrorResponder, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, errors: errs, log: log}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context, id domain.Identity) {
	u, err := h.uc.GetMe(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// EditMe handles PATCH /users
func (h *UserHandler) EditMe(c *gin.Context, id domain.Identity) {
	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid edit user request", zap.Error(err))
		h.errors.Respond(c, bindError(err))
		return
	}

	u, err := h.uc.EditMe(c.Request.Context(), id, user.EditUserRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}
