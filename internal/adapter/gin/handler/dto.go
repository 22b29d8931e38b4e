package handler

import (
	"time"

	"bookmark-service/internal/domain/bookmark"
	"bookmark-service/internal/domain/user"
)

// SignupRequest represents the HTTP request body for POST /auth/sign-up
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest represents the HTTP request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the access token issued by signup and login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// EditUserRequest represents the HTTP request body for PATCH /users
type EditUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
}

// UserResponse represents the HTTP response for user data. The password hash is never exposed.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateBookmarkRequest represents the HTTP request body for POST /bookmarks
type CreateBookmarkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Link        string  `json:"link" binding:"required,url"`
}

// EditBookmarkRequest represents the HTTP request body for PATCH /bookmarks/:id
type EditBookmarkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Link        *string `json:"link" binding:"omitempty,url"`
}

// BookmarkResponse represents the HTTP response for bookmark data
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBookmarkResponse(b *bookmark.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
