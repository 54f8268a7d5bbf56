package handler

import (
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for company profile handlers.
type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get returns the company profile. Anonymous.
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "")
}

// Update renames the company profile.
func (h *CompanyHandler) Update(c echo.Context) error {
	var input *usecase.UpdateCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid company input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Company name is required")
	}

	company, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company updated")
}

// SetLogo stores an uploaded logo and replaces the profile reference.
func (h *CompanyHandler) SetLogo(c echo.Context) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Logo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded logo")
	}
	defer file.Close()

	company, err := h.uc.SetLogo(c.Request().Context(), &usecase.SetLogoInput{
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Logo updated")
}
