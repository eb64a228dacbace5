package domain

import "time"

// DateFormat is the wire and storage format for calendar dates. Reservations
// carry no time-of-day component; both range boundaries are inclusive.
const DateFormat = "2006-01-02"

type Reservation struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	AccommodationID int64     `json:"accommodation_id" gorm:"not null;index"`
	UserID          int64     `json:"user_id" gorm:"not null;index"`
	DateFrom        time.Time `json:"date_from" gorm:"not null;type:date"`
	DateTo          time.Time `json:"date_to" gorm:"not null;type:date"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day. Ranges that touch at an endpoint overlap.
func (r Reservation) Overlaps(from, to time.Time) bool {
	return !(from.After(r.DateTo) || to.Before(r.DateFrom))
}
