package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/bookmark"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// BookmarkHandler handles HTTP requests for bookmark operations
type BookmarkHandler struct {
	uc     bookmark.Usecase
	errors *ErrorResponder
	log    *zap.Logger
}

// NewBookmarkHandler creates a new BookmarkHandler instance
func NewBookmarkHandler(uc bookmark.Usecase, errs *ErrorResponder, log *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{uc: uc, errors: errs, log: log}
}

// Create handles POST /bookmarks
func (h *BookmarkHandler) Create(c *gin.Context, id user.Identity) {
	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid create bookmark request", zap.Error(err))
		h.errors.Respond(c, bindError(err))
		return
	}

	b, err := h.uc.Create(c.Request.Context(), id, bookmark.CreateBookmarkRequest{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookmarkResponse(b))
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(c *gin.Context, id user.Identity) {
	bookmarks, err := h.uc.List(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	resp := make([]BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		resp[i] = toBookmarkResponse(&bookmarks[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /bookmarks/:id
func (h *BookmarkHandler) GetByID(c *gin.Context, id user.Identity) {
	bookmarkID, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	b, err := h.uc.GetByID(c.Request.Context(), id, bookmarkID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// Edit handles PATCH /bookmarks/:id
func (h *BookmarkHandler) Edit(c *gin.Context, id user.Identity) {
	bookmarkID, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	var req EditBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid edit bookmark request", zap.Error(err))
		h.errors.Respond(c, bindError(err))
		return
	}

	b, err := h.uc.Edit(c.Request.Context(), id, bookmarkID, bookmark.EditBookmarkRequest{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// Delete handles DELETE /bookmarks/:id
func (h *BookmarkHandler) Delete(c *gin.Context, id user.Identity) {
	bookmarkID, ok := h.bookmarkID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, bookmarkID); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bookmarkID parses the :id path parameter, answering 400 when it is not a number
func (h *BookmarkHandler) bookmarkID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Warn("Invalid bookmark ID", zap.String("id", idStr))
		h.errors.Respond(c, apperrors.NewValidationError("id", "id must be a valid number"))
		return 0, false
	}
	return id, true
}
