package bookmark

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/bookmark"
	"bookmark-service/internal/domain/user"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// Repository defines the bookmark storage operations.
type Repository interface {
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	GetByID(ctx context.Context, id int64) (*domain.Bookmark, error)
	Update(ctx context.Context, id, userID int64, patch domain.Patch) (*domain.Bookmark, error)
	Delete(ctx context.Context, id, userID int64) error
}

// BookmarkUsecase implements bookmark operations. Every operation is scoped to
// the identity's user; a bookmark owned by someone else is reported as not found.
type BookmarkUsecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of BookmarkUsecase.
func New(r Repository, log *zap.Logger) *BookmarkUsecase {
	return &BookmarkUsecase{repo: r, log: log, validate: validator.New()}
}

// Create stores a bookmark owned by the caller.
func (uc *BookmarkUsecase) Create(ctx context.Context, id user.Identity, in CreateBookmarkRequest) (*domain.Bookmark, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}

	log := logger.WithContext(ctx, uc.log)
	log.Info("creating bookmark", zap.Int64("user_id", id.UserID()))

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.FromValidator(err)
	}

	b, err := uc.repo.Create(ctx, &domain.Bookmark{
		UserID:      id.UserID(),
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	})
	if err != nil {
		log.Error("failed to create bookmark", zap.Error(err))
		return nil, err
	}

	return b, nil
}

// List returns the caller's bookmarks. The result is never nil.
func (uc *BookmarkUsecase) List(ctx context.Context, id user.Identity) ([]domain.Bookmark, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}

	bookmarks, err := uc.repo.ListByUser(ctx, id.UserID())
	if err != nil {
		logger.WithContext(ctx, uc.log).Error("failed to list bookmarks", zap.Error(err))
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

// GetByID returns one of the caller's bookmarks.
func (uc *BookmarkUsecase) GetByID(ctx context.Context, id user.Identity, bookmarkID int64) (*domain.Bookmark, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return uc.owned(ctx, id, bookmarkID)
}

// Edit applies a partial update to one of the caller's bookmarks.
func (uc *BookmarkUsecase) Edit(ctx context.Context, id user.Identity, bookmarkID int64, in EditBookmarkRequest) (*domain.Bookmark, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}

	log := logger.WithContext(ctx, uc.log)
	log.Info("editing bookmark", zap.Int64("id", bookmarkID), zap.Int64("user_id", id.UserID()))

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.FromValidator(err)
	}

	b, err := uc.owned(ctx, id, bookmarkID)
	if err != nil {
		return nil, err
	}

	patch := domain.Patch{Title: in.Title, Description: in.Description, Link: in.Link}
	if patch.IsEmpty() {
		return b, nil
	}

	updated, err := uc.repo.Update(ctx, bookmarkID, id.UserID(), patch)
	if err != nil {
		if !errors.Is(err, apperrors.ErrBookmarkNotFound) {
			log.Error("failed to update bookmark", zap.Int64("id", bookmarkID), zap.Error(err))
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes one of the caller's bookmarks.
func (uc *BookmarkUsecase) Delete(ctx context.Context, id user.Identity, bookmarkID int64) error {
	if id.User == nil {
		return apperrors.ErrUnauthorized
	}

	log := logger.WithContext(ctx, uc.log)
	log.Info("deleting bookmark", zap.Int64("id", bookmarkID), zap.Int64("user_id", id.UserID()))

	if _, err := uc.owned(ctx, id, bookmarkID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, bookmarkID, id.UserID()); err != nil {
		if !errors.Is(err, apperrors.ErrBookmarkNotFound) {
			log.Error("failed to delete bookmark", zap.Int64("id", bookmarkID), zap.Error(err))
		}
		return err
	}

	return nil
}

// owned loads the bookmark and hides it unless the identity owns it.
func (uc *BookmarkUsecase) owned(ctx context.Context, id user.Identity, bookmarkID int64) (*domain.Bookmark, error) {
	if bookmarkID <= 0 {
		return nil, apperrors.ErrBookmarkNotFound
	}

	b, err := uc.repo.GetByID(ctx, bookmarkID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrBookmarkNotFound) {
			logger.WithContext(ctx, uc.log).Error("failed to get bookmark", zap.Int64("id", bookmarkID), zap.Error(err))
		}
		return nil, err
	}

	if !b.OwnedBy(id.UserID()) {
		logger.WithContext(ctx, uc.log).Warn("bookmark access denied",
			zap.Int64("id", bookmarkID),
			zap.Int64("user_id", id.UserID()),
		)
		return nil, apperrors.ErrBookmarkNotFound
	}

	return b, nil
}
