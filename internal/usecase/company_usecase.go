package usecase

import (
	"context"
	"io"

	"boutique/internal/domain/entity"
)

// UpdateCompanyInput defines the data for renaming the company profile.
type UpdateCompanyInput struct {
	Name string `json:"name" validate:"required"`
}

// SetLogoInput carries one uploaded logo file.
type SetLogoInput struct {
	Filename string
	Content  io.Reader
}

// CompanyUsecase defines operations on the singleton company profile.
type CompanyUsecase interface {
	Get(ctx context.Context) (*entity.Company, error)
	Update(ctx context.Context, input *UpdateCompanyInput) (*entity.Company, error)

	// SetLogo stores the uploaded asset and replaces the logo path.
	// The previous asset is not cleaned up; staleness is accepted.
	SetLogo(ctx context.Context, input *SetLogoInput) (*entity.Company, error)
}
