package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// AvailabilityServiceParams holds dependencies for availabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Logger *slog.Logger
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	return &availabilityService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the category's fully populated availability map,
// persisting the document when normalization filled gaps.
func (srv *availabilityService) Get(ctx context.Context, categoryID string) (entity.AvailabilityMap, error) {
	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if doc.FindCategory(categoryID) == nil {
		return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	if doc.EnsureAvailability(categoryID) {
		if err := srv.store.Save(ctx, doc); err != nil {
			return nil, err
		}
	}

	return doc.Availability[categoryID], nil
}

// Set flips exactly one day's flag and returns the updated map.
func (srv *availabilityService) Set(ctx context.Context, categoryID string, input *usecase.SetAvailabilityInput) (entity.AvailabilityMap, error) {
	// Day validation precedes the category lookup, as a malformed
	// request should not depend on store contents.
	if input == nil || !entity.ValidDay(input.Day) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "day must be between 1 and 31")
	}

	doc, err := srv.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if doc.FindCategory(categoryID) == nil {
		return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	doc.EnsureAvailability(categoryID)
	doc.Availability[categoryID][input.Day] = input.Available

	if err := srv.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Availability updated",
		slog.String("categoryId", categoryID), slog.Int("day", input.Day), slog.Bool("available", input.Available))

	return doc.Availability[categoryID], nil
}
