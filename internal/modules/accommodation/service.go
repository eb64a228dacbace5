package accommodation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/geocode"
	"staybook/internal/repository"
)

const minImages = 3

type Service struct {
	accommodations AccommodationRepository
	users          UserRepository
	likes          LikeRepository
	geocoder       Geocoder
}

func NewService(accommodations AccommodationRepository, users UserRepository, likes LikeRepository, geocoder Geocoder) *Service {
	return &Service{
		accommodations: accommodations,
		users:          users,
		likes:          likes,
		geocoder:       geocoder,
	}
}

type ListingInput struct {
	Name          string
	Address       string
	MaxGuests     int
	PricePerNight float64
	Description   string
	IBAN          string
	Images        [][]byte
}

func (in *ListingInput) validate() error {
	if in.Name == "" || in.Address == "" || in.IBAN == "" {
		return ErrValidation
	}
	if in.MaxGuests <= 0 || in.PricePerNight <= 0 {
		return ErrValidation
	}
	if len(in.Images) < minImages {
		return ErrValidation
	}
	return nil
}

// Create publishes a new listing. The address is geocoded into coordinates
// plus city and country; the listing is rejected when the address cannot be
// resolved. The caller is promoted to owner on their first listing.
func (s *Service) Create(ctx context.Context, ownerID int64, in ListingInput) (*domain.Accommodation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	loc, err := s.resolveAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}

	a := &domain.Accommodation{
		OwnerID:       ownerID,
		Name:          in.Name,
		City:          loc.City,
		Country:       loc.Country,
		Latitude:      loc.Lat,
		Longitude:     loc.Lon,
		MaxGuests:     in.MaxGuests,
		PricePerNight: in.PricePerNight,
		Description:   in.Description,
		IBAN:          in.IBAN,
	}
	if err := s.accommodations.Create(ctx, a, in.Images); err != nil {
		return nil, err
	}

	if err := s.users.PromoteToOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the listing's fields and its whole image set. Only the
// owner may edit; everyone else sees not found.
func (s *Service) Update(ctx context.Context, id, ownerID int64, in ListingInput) (*domain.Accommodation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	loc, err := s.resolveAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}

	a.Name = in.Name
	a.City = loc.City
	a.Country = loc.Country
	a.Latitude = loc.Lat
	a.Longitude = loc.Lon
	a.MaxGuests = in.MaxGuests
	a.PricePerNight = in.PricePerNight
	a.Description = in.Description
	a.IBAN = in.IBAN

	if err := s.accommodations.Update(ctx, a, in.Images); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID int64) error {
	deleted, err := s.accommodations.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type Details struct {
	Accommodation *domain.Accommodation
	ImageCount    int64
	IsLiked       bool
	IsOwner       bool
}

func (s *Service) Details(ctx context.Context, id, viewerID int64) (*Details, error) {
	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cnt, err := s.accommodations.CountImages(ctx, id)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.Exists(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}

	return &Details{
		Accommodation: a,
		ImageCount:    cnt,
		IsLiked:       liked,
		IsOwner:       a.OwnerID == viewerID,
	}, nil
}

// Confirmation returns the payment details shown before a reservation is
// placed.
func (s *Service) Confirmation(ctx context.Context, id int64) (float64, string, error) {
	a, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrNotFound
		}
		return 0, "", err
	}
	return a.PricePerNight, a.IBAN, nil
}

// MainScreen returns up to five random listings with the viewer's like state.
func (s *Service) MainScreen(ctx context.Context, viewerID int64) ([]repository.MainScreenRow, error) {
	return s.accommodations.Random(ctx, viewerID, 5)
}

func (s *Service) Mine(ctx context.Context, ownerID int64) ([]domain.Accommodation, error) {
	return s.accommodations.ListByOwner(ctx, ownerID)
}

// Image returns the photo at the 1-based index in upload order.
func (s *Service) Image(ctx context.Context, id int64, index int) ([]byte, error) {
	if index < 1 {
		return nil, ErrValidation
	}
	content, err := s.accommodations.GetImage(ctx, id, index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

// ReverseAddress resolves coordinates to a display address.
func (s *Service) ReverseAddress(ctx context.Context, lat, lon float64) (string, error) {
	addr, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResult) {
			return "", ErrInvalidAddress
		}
		return "", ErrGeocodeUnavailable
	}
	return addr, nil
}

func (s *Service) resolveAddress(ctx context.Context, address string) (*geocode.Location, error) {
	loc, err := s.geocoder.Forward(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResult) {
			return nil, ErrInvalidAddress
		}
		return nil, ErrGeocodeUnavailable
	}
	return loc, nil
}
