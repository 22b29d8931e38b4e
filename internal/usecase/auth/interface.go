package auth

import (
	"context"

	domain "bookmark-service/internal/domain/user"
)

// Usecase defines the interface for signup, login and bearer token verification.
type Usecase interface {
	Signup(ctx context.Context, in SignupRequest) (*TokenResponse, error)
	Login(ctx context.Context, in LoginRequest) (*TokenResponse, error)
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}
