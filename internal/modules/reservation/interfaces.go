package reservation

import (
	"context"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// ReservationRepository is the storage the ledger runs on. Create must be
// atomic with respect to the overlap check (see repository implementation).
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	CountOverlapping(ctx context.Context, accommodationID int64, from, to time.Time) (int64, error)
	DeleteOwned(ctx context.Context, reservationID, userID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.UserReservationRow, error)
	Upcoming(ctx context.Context, userID int64, from time.Time) ([]domain.Reservation, error)
}
