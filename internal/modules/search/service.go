package search

import (
	"context"
	"log"
	"time"

	"staybook/internal/domain"
	"staybook/internal/geo"
)

// geocodeTimeout caps how long a search waits for the geocoder before giving
// up on the location filter.
const geocodeTimeout = 3 * time.Second

type Service struct {
	accommodations AccommodationRepository
	availability   AvailabilityChecker
	geocoder       Geocoder
}

func NewService(accommodations AccommodationRepository, availability AvailabilityChecker, geocoder Geocoder) *Service {
	return &Service{
		accommodations: accommodations,
		availability:   availability,
		geocoder:       geocoder,
	}
}

type Query struct {
	Address string
	Guests  int
	From    time.Time
	To      time.Time
}

// Search runs the filter pipeline: capacity in SQL, then geography, then
// availability. Every filter is optional; an empty query returns everything.
//
// A geocoder failure drops the location filter instead of failing the search.
// Giving results for the remaining filters beats a 502 on the main search
// screen.
func (s *Service) Search(ctx context.Context, q Query) ([]SearchResult, error) {
	if q.From.IsZero() != q.To.IsZero() {
		return nil, ErrValidation
	}
	if !q.From.IsZero() && q.From.After(q.To) {
		return nil, ErrValidation
	}

	candidates, err := s.accommodations.ListCandidates(ctx, q.Guests)
	if err != nil {
		return nil, err
	}

	var (
		center      *geo.Point
		filterDates = !q.From.IsZero()
	)
	if q.Address != "" {
		center = s.locate(ctx, q.Address)
	}

	results := make([]SearchResult, 0, len(candidates))
	for _, a := range candidates {
		if center != nil && !geo.WithinRadius(center.Lat, center.Lon, a.Latitude, a.Longitude, geo.SearchRadiusMeters) {
			continue
		}
		if filterDates {
			free, err := s.availability.IsAvailable(ctx, a.ID, q.From, q.To)
			if err != nil {
				return nil, err
			}
			if !free {
				continue
			}
		}
		results = append(results, toSearchResult(a))
	}
	return results, nil
}

func (s *Service) locate(ctx context.Context, address string) *geo.Point {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	loc, err := s.geocoder.Forward(ctx, address)
	if err != nil {
		log.Printf("search: geocode %q failed, skipping location filter: %v", address, err)
		return nil
	}
	return &geo.Point{Lat: loc.Lat, Lon: loc.Lon}
}

func toSearchResult(a domain.Accommodation) SearchResult {
	return SearchResult{
		ID:            a.ID,
		Name:          a.Name,
		City:          a.City,
		Country:       a.Country,
		MaxGuests:     a.MaxGuests,
		PricePerNight: a.PricePerNight,
	}
}
