package user

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/user"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
)

// Repository defines the user storage operations the profile flow needs.
type Repository interface {
	Update(ctx context.Context, id int64, patch domain.Patch) (*domain.User, error)
}

// UserUsecase implements the profile operations of the authenticated user.
// The user is always taken from the verified identity, never from client input.
type UserUsecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of UserUsecase.
func New(r Repository, log *zap.Logger) *UserUsecase {
	return &UserUsecase{repo: r, log: log, validate: validator.New()}
}

// GetMe returns the user the gate resolved.
func (uc *UserUsecase) GetMe(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return id.User, nil
}

// EditMe applies a partial update to the caller's own record.
func (uc *UserUsecase) EditMe(ctx context.Context, id domain.Identity, in EditUserRequest) (*domain.User, error) {
	if id.User == nil {
		return nil, apperrors.ErrUnauthorized
	}

	log := logger.WithContext(ctx, uc.log)
	log.Info("editing user", zap.Int64("id", id.UserID()))

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.FromValidator(err)
	}

	patch := domain.Patch{Email: in.Email, FirstName: in.FirstName, LastName: in.LastName}
	if patch.IsEmpty() {
		return id.User, nil
	}

	u, err := uc.repo.Update(ctx, id.UserID(), patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			log.Warn("email already exists", zap.Int64("id", id.UserID()))
		} else {
			log.Error("failed to update user", zap.Int64("id", id.UserID()), zap.Error(err))
		}
		return nil, err
	}

	return u, nil
}
