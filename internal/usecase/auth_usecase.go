package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"

	"go.uber.org/zap"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	rt       runtime
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher domain.PasswordHasher, opts ...Option) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		rt:       newRuntime(opts),
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	return u.createAccount(ctx, in)
}

func (u *authUsecase) CreateUser(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	return u.createAccount(ctx, in)
}

func (u *authUsecase) createAccount(ctx context.Context, in domain.RegisterInput) (domain.User, error) {
	// 1. Shape checks, all before touching storage
	if strings.TrimSpace(in.Email) == "" {
		return domain.User{}, apperror.Validation("Email is required")
	}
	if in.Password == "" {
		return domain.User{}, apperror.Validation("Password is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.User{}, apperror.Validation("Name is required")
	}
	role, err := domain.ParseUserRole(in.Role)
	if err != nil {
		return domain.User{}, err
	}
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return domain.User{}, err
	}
	if err := domain.ValidatePlainPassword(in.Password); err != nil {
		return domain.User{}, err
	}

	// 2. Uniqueness (the storage constraint still has the final say)
	exists, err := u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, apperror.Conflict("Email already registered")
	}

	// 3. Build and persist
	password, err := domain.NewPasswordHash(u.hasher, in.Password)
	if err != nil {
		return domain.User{}, err
	}
	user, err := domain.NewUser(u.rt.newID(), email, password, in.Name, role, u.rt.now())
	if err != nil {
		return domain.User{}, err
	}
	if err := u.userRepo.Save(ctx, user); err != nil {
		return domain.User{}, conflictOr(err, "Email already registered", "save user")
	}

	logger.From(ctx).Info("user registered",
		zap.String("user_id", user.ID()),
		zap.String("role", string(user.Role())),
	)
	return user, nil
}

// Authenticate answers every failure after the shape checks with the same
// InvalidCredentials error.
func (u *authUsecase) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return domain.User{}, apperror.Validation("Email is required")
	}
	if password == "" {
		return domain.User{}, apperror.Validation("Password is required")
	}

	normalized, err := domain.NewEmail(email)
	if err != nil {
		return domain.User{}, apperror.InvalidCredentials()
	}

	user, err := u.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, apperror.InvalidCredentials()
		}
		return domain.User{}, fmt.Errorf("find user by email: %w", err)
	}

	if !user.PasswordHash().Matches(u.hasher, password) {
		return domain.User{}, apperror.InvalidCredentials()
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return domain.User{}, apperror.Validation("User ID is required")
	}
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, notFoundOr(err, apperror.NotFound("User", id), "find user")
	}
	return user, nil
}
