package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/auth"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// MockAuthUsecase is a mock implementation of auth.Usecase
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, in auth.SignupRequest) (*auth.TokenResponse, error) {
	args := m.Called(ctx, in)
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, in auth.LoginRequest) (*auth.TokenResponse, error) {
	args := m.Called(ctx, in)
	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (user.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(user.Identity), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setupGate(t *testing.T) (*MockAuthUsecase, *gin.Engine, *bool) {
	mockAuth := new(MockAuthUsecase)
	log := zaptest.NewLogger(t)
	gate := NewGate(mockAuth, handler.NewErrorResponder(true, log), log)

	called := false
	r := gin.New()
	r.GET("/me", gate.Require(func(c *gin.Context, id user.Identity) {
		called = true
		assert.Equal(t, logger.GetUserID(c.Request.Context()), "42")
		c.JSON(http.StatusOK, gin.H{"id": id.UserID()})
	}))
	return mockAuth, r, &called
}

func TestGate(t *testing.T) {
	t.Run("Valid Token", func(t *testing.T) {
		mockAuth, r, called := setupGate(t)
		mockAuth.On("Authenticate", mock.Anything, "tok").
			Return(user.Identity{User: &user.User{ID: 42}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":42}`, w.Body.String())
		assert.True(t, *called)
	})

	t.Run("Scheme Is Case Insensitive", func(t *testing.T) {
		mockAuth, r, called := setupGate(t)
		mockAuth.On("Authenticate", mock.Anything, "tok").
			Return(user.Identity{User: &user.User{ID: 42}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "bearer tok")
		serve(r, req)

		assert.True(t, *called)
	})

	headers := map[string]string{
		"Missing Header": "",
		"Wrong Scheme":   "Basic dXNlcjpwdw==",
		"Empty Token":    "Bearer ",
	}
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			mockAuth, r, called := setupGate(t)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := serve(r, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *called)
			mockAuth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
		})
	}

	t.Run("Rejected Token", func(t *testing.T) {
		mockAuth, r, called := setupGate(t)
		mockAuth.On("Authenticate", mock.Anything, "expired").
			Return(user.Identity{}, apperrors.NewUnauthorizedError("invalid or expired token"))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := serve(r, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid or expired token", body.Message)
		assert.Equal(t, "Unauthorized", body.Error)
		assert.False(t, *called)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	t.Run("Generated", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := serve(r, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	fields := entries[1].ContextMap()
	assert.Equal(t, "/missing", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"statusCode":500,"error":"Internal Server Error","message":"internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
