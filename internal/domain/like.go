package domain

import "time"

// Like marks an accommodation as liked by a user. Presence of the row is the
// whole state; liking again removes it.
type Like struct {
	UserID          int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	AccommodationID int64     `json:"accommodation_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }
