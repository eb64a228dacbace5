package reservation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	reservations ReservationRepository
}

func NewService(reservations ReservationRepository) *Service {
	return &Service{reservations: reservations}
}

// IsAvailable reports whether the accommodation has no reservation
// overlapping the inclusive range [from, to]. Read-only; the authoritative
// check during creation happens inside the repository transaction.
func (s *Service) IsAvailable(ctx context.Context, accommodationID int64, from, to time.Time) (bool, error) {
	cnt, err := s.reservations.CountOverlapping(ctx, accommodationID, from, to)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// Create books [from, to] on the accommodation for the user. A swapped range
// (from after to) is rejected rather than relying on the overlap formula's
// symmetry.
func (s *Service) Create(ctx context.Context, accommodationID, userID int64, from, to time.Time) (*domain.Reservation, error) {
	if accommodationID == 0 || userID == 0 || from.IsZero() || to.IsZero() {
		return nil, ErrValidation
	}
	if from.After(to) {
		return nil, ErrValidation
	}

	r := &domain.Reservation{
		AccommodationID: accommodationID,
		UserID:          userID,
		DateFrom:        from,
		DateTo:          to,
	}
	if err := s.reservations.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrReservationOverlap) {
			return nil, ErrConflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// Cancel deletes the user's reservation. Reservations that do not exist and
// reservations owned by someone else are both reported as not found.
func (s *Service) Cancel(ctx context.Context, reservationID, userID int64) error {
	deleted, err := s.reservations.DeleteOwned(ctx, reservationID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MyReservations(ctx context.Context, userID int64) ([]repository.UserReservationRow, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// Upcoming lists the user's reservations starting today or later.
func (s *Service) Upcoming(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.reservations.Upcoming(ctx, userID, today)
}
