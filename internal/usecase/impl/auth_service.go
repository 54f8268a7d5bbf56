// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"boutique/config"
	deliverycontext "boutique/internal/delivery/context"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store             repository.DocumentStore
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	bootstrapPassword string
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store        repository.DocumentStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	bootstrapPassword := ""
	if params.Config != nil {
		bootstrapPassword = params.Config.Admin.BootstrapPassword
	}

	return &authService{
		store:             params.Store,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		bootstrapPassword: bootstrapPassword,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the admin credentials and issues a signed token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Unknown username and wrong password take the same exit so the
	// response never reveals which part was wrong.
	if input.Username != doc.Admin.Username || !srv.hasher.Check(input.Password, doc.Admin.PasswordHash) {
		srv.log(ctx).Warn("Failed login attempt", slog.String("username", input.Username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.IssueToken(doc.Admin.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", doc.Admin.Username))

	return &usecase.LoginOutput{Token: token}, nil
}

// EnsureAdminPassword seeds the stored hash from the bootstrap config
// when no password has been set yet.
func (srv *authService) EnsureAdminPassword(ctx context.Context) error {
	if srv.bootstrapPassword == "" {
		return nil
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return err
	}
	if doc.Admin.PasswordHash != "" {
		return nil
	}

	hash, err := srv.hasher.Hash(srv.bootstrapPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap password")
	}

	doc.Admin.PasswordHash = hash
	if err := srv.store.Save(ctx, doc); err != nil {
		return err
	}

	srv.log(ctx).Info("Seeded admin password hash", slog.String("username", doc.Admin.Username))

	return nil
}
