package auth

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/user"
	apperrors "bookmark-service/pkg/errors"
	"bookmark-service/pkg/logger"
	"bookmark-service/pkg/security"
)

var dummyHash = security.DummyHash(security.DefaultArgon2Params)

// UserRepository is the slice of user storage the auth flow needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // nil, nil when absent
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Sign(userID int64, email string) (string, error)
	Parse(token string) (*security.Claims, error)
}

// AuthUsecase implements signup, login and token verification.
type AuthUsecase struct {
	repo     UserRepository
	hasher   PasswordHasher
	tokens   TokenManager
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new AuthUsecase.
func New(r UserRepository, h PasswordHasher, t TokenManager, log *zap.Logger) *AuthUsecase {
	return &AuthUsecase{repo: r, hasher: h, tokens: t, log: log, validate: validator.New()}
}

// Signup hashes the password, stores the user and returns a token for it.
// A registered email fails with apperrors.ErrEmailExists.
func (uc *AuthUsecase) Signup(ctx context.Context, in SignupRequest) (*TokenResponse, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("signing up user", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.FromValidator(err)
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	u, err := uc.repo.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			log.Warn("email already exists", zap.String("email", in.Email))
		} else {
			log.Error("failed to create user", zap.Error(err))
		}
		return nil, err
	}

	return uc.signToken(ctx, u)
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password fail identically with apperrors.ErrInvalidCredentials.
func (uc *AuthUsecase) Login(ctx context.Context, in LoginRequest) (*TokenResponse, error) {
	log := logger.WithContext(ctx, uc.log)

	if err := uc.validate.Struct(in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, apperrors.FromValidator(err)
	}

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to look up user by email", zap.Error(err))
		return nil, err
	}
	if u == nil {
		// spend the same argon2 work as a real mismatch
		_, _ = uc.hasher.Verify(dummyHash, in.Password)
		log.Info("login rejected", zap.String("reason", "unknown email"))
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := uc.hasher.Verify(u.PasswordHash, in.Password)
	if err != nil {
		log.Error("stored password hash unreadable", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to verify password", err)
	}
	if !ok {
		log.Info("login rejected", zap.String("reason", "password mismatch"), zap.Int64("user_id", u.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	return uc.signToken(ctx, u)
}

// Authenticate verifies the bearer token and resolves its subject to a live user.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	log := logger.WithContext(ctx, uc.log)

	if token == "" {
		return domain.Identity{}, apperrors.NewUnauthorizedError("missing bearer token")
	}

	claims, err := uc.tokens.Parse(token)
	if err != nil {
		log.Debug("token rejected", zap.Error(err))
		return domain.Identity{}, apperrors.NewUnauthorizedError("invalid or expired token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return domain.Identity{}, apperrors.NewUnauthorizedError("invalid or expired token")
	}

	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			log.Warn("token subject no longer exists", zap.Int64("user_id", userID))
			return domain.Identity{}, apperrors.NewUnauthorizedError("invalid or expired token")
		}
		log.Error("failed to resolve token subject", zap.Int64("user_id", userID), zap.Error(err))
		return domain.Identity{}, err
	}

	return domain.Identity{User: u}, nil
}

func (uc *AuthUsecase) signToken(ctx context.Context, u *domain.User) (*TokenResponse, error) {
	token, err := uc.tokens.Sign(u.ID, u.Email)
	if err != nil {
		logger.WithContext(ctx, uc.log).Error("failed to sign token", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to sign token", err)
	}
	return &TokenResponse{AccessToken: token}, nil
}
