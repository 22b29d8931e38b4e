package bookmark

import (
	"context"

	domain "bookmark-service/internal/domain/bookmark"
	"bookmark-service/internal/domain/user"
)

// Usecase defines the interface for bookmark operations scoped to the caller.
type Usecase interface {
	Create(ctx context.Context, id user.Identity, in CreateBookmarkRequest) (*domain.Bookmark, error)
	List(ctx context.Context, id user.Identity) ([]domain.Bookmark, error)
	GetByID(ctx context.Context, id user.Identity, bookmarkID int64) (*domain.Bookmark, error)
	Edit(ctx context.Context, id user.Identity, bookmarkID int64, in EditBookmarkRequest) (*domain.Bookmark, error)
	Delete(ctx context.Context, id user.Identity, bookmarkID int64) error
}
