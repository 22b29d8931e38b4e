package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-service/internal/domain/user"
	apperrors "bookmark-service/pkg/errors"
)

// UserRepoPG implements the user repositories using GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"not null;uniqueIndex"`
	Hash      string `gorm:"not null"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.Hash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create inserts a new user. A duplicate email yields apperrors.ErrEmailExists.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Email:     u.Email,
		Hash:      u.PasswordHash,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			r.log.Warn("duplicate email on create", zap.String("email", u.Email))
			return nil, apperrors.ErrEmailExists
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves a user by ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Int64("id", id))
			return nil, apperrors.ErrUserNotFound
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves a user by email. It returns nil, nil when no user has that email.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toDomain(), nil
}

// Update applies the non-nil fields of patch and returns the stored record.
func (r *UserRepoPG) Update(ctx context.Context, id int64, patch user.Patch) (*user.User, error) {
	fields := map[string]any{}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		fields["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		fields["last_name"] = *patch.LastName
	}

	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&UserSchema{ID: id}).Updates(fields).Error
		if err != nil {
			if isUniqueViolation(err) {
				r.log.Warn("duplicate email on update", zap.Int64("id", id))
				return nil, apperrors.ErrEmailExists
			}
			r.log.Error("failed to update user in db", zap.Error(err), zap.Int64("id", id))
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		r.log.Info("user updated in db", zap.Int64("id", id), zap.Int("fields", len(fields)))
	}

	return r.GetByID(ctx, id)
}
