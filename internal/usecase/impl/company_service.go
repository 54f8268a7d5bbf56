package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	store  repository.DocumentStore
	media  service.MediaStore
	logger *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Media  service.MediaStore
	Logger *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		store:  params.Store,
		media:  params.Media,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *companyService) Get(ctx context.Context) (*entity.Company, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &doc.Company, nil
}

func (srv *companyService) Update(ctx context.Context, input *usecase.UpdateCompanyInput) (*entity.Company, error) {
	if input == nil || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "company name is required")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc.Company.Name = input.Name
	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	return &doc.Company, nil
}

func (srv *companyService) SetLogo(ctx context.Context, input *usecase.SetLogoInput) (*entity.Company, error) {
	if input == nil || input.Content == nil || input.Filename == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "logo file is required")
	}

	logoPath, err := srv.media.Save(ctx, input.Filename, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store logo")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	// The previous asset stays on disk; only the reference is replaced.
	doc.Company.LogoPath = logoPath
	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Company logo updated", slog.String("logoPath", logoPath))

	return &doc.Company, nil
}
