// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.PublicUser, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	digest, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		Credential: entity.Credential{
			PasswordHash: digest,
			Salt:         salt,
		},
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", uint64(newUser.ID)))

	public := newUser.Public()

	return &public, nil
}

// Login verifies credentials and issues an access token. The unknown-email
// path burns a decoy derivation so its wall-clock time matches the
// wrong-password path; both return the same opaque error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.VerifyMissingAccount(input.Password)
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Verify(input.Password, user.Credential.Salt, user.Credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenSvc.Sign(service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{Token: token}, nil
}

// ListUsers returns the public projection of every account.
func (srv *userService) ListUsers(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	public := make([]entity.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	return public, nil
}
