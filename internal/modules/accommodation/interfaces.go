package accommodation

import (
	"context"

	"staybook/internal/domain"
	"staybook/internal/geocode"
	"staybook/internal/repository"
)

type AccommodationRepository interface {
	Create(ctx context.Context, a *domain.Accommodation, images [][]byte) error
	Update(ctx context.Context, a *domain.Accommodation, images [][]byte) error
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Accommodation, error)
	Random(ctx context.Context, userID int64, limit int) ([]repository.MainScreenRow, error)
	CountImages(ctx context.Context, id int64) (int64, error)
	GetImage(ctx context.Context, id int64, index int) ([]byte, error)
}

type UserRepository interface {
	PromoteToOwner(ctx context.Context, id int64) error
}

type LikeRepository interface {
	Exists(ctx context.Context, userID, accommodationID int64) (bool, error)
}

// Geocoder resolves free-text addresses. The production implementation talks
// to Nominatim with a redis cache in front.
type Geocoder interface {
	Forward(ctx context.Context, address string) (*geocode.Location, error)
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}
