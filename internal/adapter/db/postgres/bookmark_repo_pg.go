package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-service/internal/domain/bookmark"
	apperrors "bookmark-service/pkg/errors"
)

// BookmarkRepoPG implements the bookmark repository using GORM.
type BookmarkRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewBookmarkRepoPG creates a new instance of BookmarkRepoPG.
func NewBookmarkRepoPG(db *gorm.DB, log *zap.Logger) *BookmarkRepoPG {
	return &BookmarkRepoPG{db: db, log: log}
}

// BookmarkSchema represents the database schema for the bookmarks table.
type BookmarkSchema struct {
	ID          int64       `gorm:"primaryKey;autoIncrement"`
	UserID      int64       `gorm:"not null;index"`
	User        *UserSchema `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string      `gorm:"not null"`
	Description *string
	Link        string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the BookmarkSchema model.
func (BookmarkSchema) TableName() string {
	return "bookmarks"
}

func (m *BookmarkSchema) toDomain() *bookmark.Bookmark {
	return &bookmark.Bookmark{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts a new bookmark.
func (r *BookmarkRepoPG) Create(ctx context.Context, b *bookmark.Bookmark) (*bookmark.Bookmark, error) {
	if b == nil {
		return nil, errors.New("bookmark cannot be nil")
	}

	model := BookmarkSchema{
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isForeignKeyViolation(err) {
			r.log.Warn("bookmark owner does not exist", zap.Int64("user_id", b.UserID))
			return nil, apperrors.ErrUserNotFound
		}
		r.log.Error("failed to create bookmark in db", zap.Error(err), zap.Int64("user_id", b.UserID))
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	r.log.Info("bookmark created in db", zap.Int64("id", model.ID), zap.Int64("user_id", model.UserID))
	return model.toDomain(), nil
}

// ListByUser returns every bookmark owned by userID.
func (r *BookmarkRepoPG) ListByUser(ctx context.Context, userID int64) ([]bookmark.Bookmark, error) {
	var models []BookmarkSchema
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list bookmarks from db", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]bookmark.Bookmark, len(models))
	for i := range models {
		bookmarks[i] = *models[i].toDomain()
	}
	return bookmarks, nil
}

// GetByID retrieves a bookmark by ID regardless of owner.
func (r *BookmarkRepoPG) GetByID(ctx context.Context, id int64) (*bookmark.Bookmark, error) {
	var model BookmarkSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("bookmark not found", zap.Int64("id", id))
			return nil, apperrors.ErrBookmarkNotFound
		}
		r.log.Error("failed to get bookmark from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return model.toDomain(), nil
}

// Update applies the non-nil fields of patch to the bookmark if userID owns it.
func (r *BookmarkRepoPG) Update(ctx context.Context, id, userID int64, patch bookmark.Patch) (*bookmark.Bookmark, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Link != nil {
		fields["link"] = *patch.Link
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&BookmarkSchema{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields)
		if res.Error != nil {
			r.log.Error("failed to update bookmark in db", zap.Error(res.Error), zap.Int64("id", id))
			return nil, fmt.Errorf("failed to update bookmark: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.ErrBookmarkNotFound
		}
		r.log.Info("bookmark updated in db", zap.Int64("id", id), zap.Int("fields", len(fields)))
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.OwnedBy(userID) {
		return nil, apperrors.ErrBookmarkNotFound
	}
	return b, nil
}

// Delete removes the bookmark if userID owns it.
func (r *BookmarkRepoPG) Delete(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&BookmarkSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete bookmark in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	r.log.Info("bookmark deleted in db", zap.Int64("id", id))
	return nil
}

// Models lists the schemas this package migrates.
func Models() []any {
	return []any{&UserSchema{}, &BookmarkSchema{}}
}
