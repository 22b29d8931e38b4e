package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/auth"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// AuthenticatedHandler is a handler that runs only for a verified caller
type AuthenticatedHandler func(c *gin.Context, id user.Identity)

// Gate verifies bearer tokens before protected handlers run
type Gate struct {
	auth   auth.Usecase
	errors *handler.ErrorResponder
	log    *zap.Logger
}

// NewGate creates a new Gate
func NewGate(a auth.Usecase, errs *handler.ErrorResponder, log *zap.Logger) *Gate {
	return &Gate{auth: a, errors: errs, log: log}
}

// Require wraps next so that it only runs with the identity resolved from the
// Authorization header. Anything else is answered with 401 and next is skipped.
func (g *Gate) Require(next AuthenticatedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.WithContext(c.Request.Context(), g.log).Debug("missing bearer token", zap.String("path", c.FullPath()))
			g.errors.Respond(c, apperrors.NewUnauthorizedError("missing bearer token"))
			return
		}

		id, err := g.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			g.errors.Respond(c, err)
			return
		}

		c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), id.UserID()))
		next(c, id)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
