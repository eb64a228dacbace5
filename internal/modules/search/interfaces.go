package search

import (
	"context"
	"time"

	"staybook/internal/domain"
	"staybook/internal/geocode"
)

type AccommodationRepository interface {
	ListCandidates(ctx context.Context, minGuests int) ([]domain.Accommodation, error)
}

// AvailabilityChecker answers whether a listing is free over an inclusive
// date range. Backed by the reservation module.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, accommodationID int64, from, to time.Time) (bool, error)
}

type Geocoder interface {
	Forward(ctx context.Context, address string) (*geocode.Location, error)
}
