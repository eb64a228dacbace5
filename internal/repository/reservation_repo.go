package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"staybook/internal/domain"
)

// ErrReservationOverlap is returned when a reservation would share a calendar
// day with an existing one for the same accommodation.
var ErrReservationOverlap = errors.New("reservation date range overlaps an existing reservation")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CountOverlapping counts reservations for the accommodation whose inclusive
// date range conflicts with [from, to]. Read-only; used by the availability
// check outside of creation.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, accommodationID int64, from, to time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("accommodation_id = ? AND NOT (? > date_to OR ? < date_from)", accommodationID, from, to).
		Count(&cnt).Error
	return cnt, err
}

// Create inserts the reservation, enforcing the no-overlap invariant. The
// availability check and the insert run in one transaction with the
// accommodation row locked, so two concurrent requests for conflicting
// ranges cannot both pass the check. On postgres the
// reservations_no_overlap exclusion constraint backs this up at the storage
// level; violations are reported as ErrReservationOverlap either way.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Select("id").Where("id = ?", res.AccommodationID)
		if tx.Dialector.Name() == "postgres" {
			// sqlite has no row locks; its single writer serializes the
			// transaction as a whole.
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var acc domain.Accommodation
		if err := q.First(&acc).Error; err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&domain.Reservation{}).
			Where("accommodation_id = ? AND NOT (? > date_to OR ? < date_from)",
				res.AccommodationID, res.DateFrom, res.DateTo).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrReservationOverlap
		}

		if err := tx.Create(res).Error; err != nil {
			return translateOverlapConstraint(err)
		}
		return nil
	})
}

// DeleteOwned removes the reservation only when it belongs to userID and
// reports whether a row was deleted. Missing and foreign reservations are
// indistinguishable to the caller.
func (r *ReservationRepository) DeleteOwned(ctx context.Context, reservationID, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reservationID, userID).
		Delete(&domain.Reservation{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// UserReservationRow is a reservation joined with its accommodation for
// listing endpoints.
type UserReservationRow struct {
	ID              int64     `gorm:"column:id"`
	AccommodationID int64     `gorm:"column:accommodation_id"`
	Name            string    `gorm:"column:name"`
	City            string    `gorm:"column:city"`
	Country         string    `gorm:"column:country"`
	DateFrom        time.Time `gorm:"column:date_from"`
	DateTo          time.Time `gorm:"column:date_to"`
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]UserReservationRow, error) {
	var rows []UserReservationRow
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("reservations.id, reservations.accommodation_id, accommodations.name, accommodations.city, accommodations.country, reservations.date_from, reservations.date_to").
		Joins("JOIN accommodations ON accommodations.id = reservations.accommodation_id").
		Where("reservations.user_id = ?", userID).
		Order("reservations.date_from").
		Scan(&rows).Error
	return rows, err
}

// Upcoming returns the user's reservations starting on or after from,
// earliest first.
func (r *ReservationRepository) Upcoming(ctx context.Context, userID int64, from time.Time) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_from >= ?", userID, from).
		Order("date_from").
		Find(&rows).Error
	return rows, err
}

func translateOverlapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "reservations_no_overlap" {
			return ErrReservationOverlap
		}
	}
	return err
}
