package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	userdomain "bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/user"
	apperrors "bookmark-service/pkg/errors"
)

func setupUser(t *testing.T) (*MockUserUsecase, http.Handler) {
	r := setupEngine(t)
	mockUsecase := new(MockUserUsecase)
	h := NewUserHandler(mockUsecase, newResponder(t), zaptest.NewLogger(t))
	r.GET("/users/me", withIdentity(h.GetMe))
	r.PATCH("/users", withIdentity(h.EditMe))
	return mockUsecase, r
}

func TestGetMe(t *testing.T) {
	mockUsecase, r := setupUser(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &userdomain.User{ID: 1, Email: "a@b.com", PasswordHash: "$argon2id$secret", FirstName: "f", LastName: "l", CreatedAt: now, UpdatedAt: now}
	mockUsecase.On("GetMe", mock.Anything, testIdentity).Return(u, nil)

	w := doJSON(r, http.MethodGet, "/users/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "a@b.com", body["email"])
	assert.Equal(t, "f", body["firstName"])
	assert.Equal(t, "l", body["lastName"])
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "2024-01-02T03:04:05Z", body["createdAt"])
	assert.NotContains(t, w.Body.String(), "argon2id")
	assert.NotContains(t, body, "hash")
}

func TestEditMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUsecase, r := setupUser(t)
		mockUsecase.On("EditMe", mock.Anything, testIdentity, mock.MatchedBy(func(in user.EditUserRequest) bool {
			return in.Email == nil && in.FirstName != nil && *in.FirstName == "new" && in.LastName == nil
		})).Return(&userdomain.User{ID: 1, Email: "a@b.com", FirstName: "new", LastName: "l"}, nil)

		w := doJSON(r, http.MethodPatch, "/users", map[string]string{"firstName": "new"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "new", resp.FirstName)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		mockUsecase, r := setupUser(t)

		w := doJSON(r, http.MethodPatch, "/users", map[string]string{"email": "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "EditMe", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Email Taken", func(t *testing.T) {
		mockUsecase, r := setupUser(t)
		mockUsecase.On("EditMe", mock.Anything, testIdentity, mock.Anything).Return(nil, apperrors.ErrEmailExists)

		w := doJSON(r, http.MethodPatch, "/users", map[string]string{"email": "taken@b.com"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
