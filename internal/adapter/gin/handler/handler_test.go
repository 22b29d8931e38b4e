package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	bookmarkdomain "bookmark-service/internal/domain/bookmark"
	userdomain "bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/auth"
	"bookmark-service/internal/usecase/bookmark"
	"bookmark-service/internal/usecase/user"
)

// MockAuthUsecase is a mock implementation of auth.Usecase
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, in auth.SignupRequest) (*auth.TokenResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenResponse), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, in auth.LoginRequest) (*auth.TokenResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenResponse), args.Error(1)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (userdomain.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(userdomain.Identity), args.Error(1)
}

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetMe(ctx context.Context, id userdomain.Identity) (*userdomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdomain.User), args.Error(1)
}

func (m *MockUserUsecase) EditMe(ctx context.Context, id userdomain.Identity, in user.EditUserRequest) (*userdomain.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdomain.User), args.Error(1)
}

// MockBookmarkUsecase is a mock implementation of bookmark.Usecase
type MockBookmarkUsecase struct {
	mock.Mock
}

func (m *MockBookmarkUsecase) Create(ctx context.Context, id userdomain.Identity, in bookmark.CreateBookmarkRequest) (*bookmarkdomain.Bookmark, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmarkdomain.Bookmark), args.Error(1)
}

func (m *MockBookmarkUsecase) List(ctx context.Context, id userdomain.Identity) ([]bookmarkdomain.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bookmarkdomain.Bookmark), args.Error(1)
}

func (m *MockBookmarkUsecase) GetByID(ctx context.Context, id userdomain.Identity, bookmarkID int64) (*bookmarkdomain.Bookmark, error) {
	args := m.Called(ctx, id, bookmarkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmarkdomain.Bookmark), args.Error(1)
}

func (m *MockBookmarkUsecase) Edit(ctx context.Context, id userdomain.Identity, bookmarkID int64, in bookmark.EditBookmarkRequest) (*bookmarkdomain.Bookmark, error) {
	args := m.Called(ctx, id, bookmarkID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmarkdomain.Bookmark), args.Error(1)
}

func (m *MockBookmarkUsecase) Delete(ctx context.Context, id userdomain.Identity, bookmarkID int64) error {
	args := m.Called(ctx, id, bookmarkID)
	return args.Error(0)
}

var testIdentity = userdomain.Identity{User: &userdomain.User{ID: 1, Email: "a@b.com", FirstName: "f", LastName: "l"}}

// withIdentity adapts an identity-taking handler for tests that bypass the gate
func withIdentity(fn func(*gin.Context, userdomain.Identity)) gin.HandlerFunc {
	return func(c *gin.Context) { fn(c, testIdentity) }
}

func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newResponder(t *testing.T) *ErrorResponder {
	return NewErrorResponder(true, zaptest.NewLogger(t))
}
