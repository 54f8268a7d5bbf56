package handler

import (
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AvailabilityHandler holds dependencies for availability handlers.
type AvailabilityHandler struct {
	uc usecase.AvailabilityUsecase
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler, injected by Fx.
func NewAvailabilityHandler(uc usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Get returns the category's day-of-month availability map. Anonymous.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, m, "")
}

// Set flips one day's availability flag.
func (h *AvailabilityHandler) Set(c echo.Context) error {
	var input *usecase.SetAvailabilityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid availability input")
	}

	m, err := h.uc.Set(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, m, "Availability updated")
}
