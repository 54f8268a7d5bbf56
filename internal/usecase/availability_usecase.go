package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// SetAvailabilityInput flips a single day's flag for one category.
type SetAvailabilityInput struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// AvailabilityUsecase defines the per-category availability calendar
// operations. Both operations normalize the category's map first.
type AvailabilityUsecase interface {
	Get(ctx context.Context, categoryID string) (entity.AvailabilityMap, error)
	Set(ctx context.Context, categoryID string, input *SetAvailabilityInput) (entity.AvailabilityMap, error)
}
