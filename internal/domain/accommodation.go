package domain

import "time"

type Accommodation struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	OwnerID       int64     `json:"owner_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	City          string    `json:"city" gorm:"not null"`
	Country       string    `json:"country" gorm:"not null"`
	Latitude      float64   `json:"latitude" gorm:"not null"`
	Longitude     float64   `json:"longitude" gorm:"not null"`
	MaxGuests     int       `json:"max_guests" gorm:"not null"`
	PricePerNight float64   `json:"price_per_night" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text"`
	IBAN          string    `json:"iban" gorm:"column:iban"`
	CreatedAt     time.Time `json:"created_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Accommodation) TableName() string { return "accommodations" }

// AccommodationImage is one photo of a listing. Position is 1-based and
// defines the order images are served in.
type AccommodationImage struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	AccommodationID int64  `json:"accommodation_id" gorm:"not null;index"`
	Position        int    `json:"position" gorm:"not null"`
	Content         []byte `json:"-" gorm:"not null"`
}

func (AccommodationImage) TableName() string { return "accommodation_images" }
