package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// ErrorResponder maps application errors to HTTP responses
type ErrorResponder struct {
	conflictAsForbidden bool
	log                 *zap.Logger
}

// NewErrorResponder creates an ErrorResponder. When conflictAsForbidden is set,
// uniqueness violations are answered with 403 instead of 409.
func NewErrorResponder(conflictAsForbidden bool, log *zap.Logger) *ErrorResponder {
	return &ErrorResponder{conflictAsForbidden: conflictAsForbidden, log: log}
}

// Respond aborts the request with the status and message carried by err.
// Errors without a status are logged and answered with a generic 500.
func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	message := err.Error()

	var (
		validation *apperrors.ValidationError
		conflict   *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		message = validation.Message
	case errors.As(err, &conflict) && r.conflictAsForbidden:
		status = http.StatusForbidden
	}

	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context(), r.log).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		message = "internal server error"
	}

	Abort(c, status, message)
}

// Abort writes an ErrorResponse and stops the handler chain
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
}

// bindError converts a request binding failure into a ValidationError
func bindError(err error) error {
	var ve *apperrors.ValidationError
	if errors.As(apperrors.FromValidator(err), &ve) {
		return ve
	}
	return apperrors.NewValidationError("", "invalid request body")
}
