package user

import (
	"context"

	domain "bookmark-service/internal/domain/user"
)

// Usecase defines the interface for the authenticated user's own profile.
type Usecase interface {
	GetMe(ctx context.Context, id domain.Identity) (*domain.User, error)
	EditMe(ctx context.Context, id domain.Identity, in EditUserRequest) (*domain.User, error)
}
