package repository

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle flips the like state for (userID, accommodationID) and returns the
// state after the call: true when the row now exists.
func (r *LikeRepository) Toggle(ctx context.Context, userID, accommodationID int64) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&domain.Like{}).
			Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
			Count(&cnt).Error; err != nil {
			return err
		}

		if cnt > 0 {
			return tx.Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
				Delete(&domain.Like{}).Error
		}

		liked = true
		return tx.Create(&domain.Like{UserID: userID, AccommodationID: accommodationID}).Error
	})
	return liked, err
}

func (r *LikeRepository) Exists(ctx context.Context, userID, accommodationID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Count(&cnt).Error
	return cnt > 0, err
}

// LikedRow is a liked accommodation summary for the liked list endpoint.
type LikedRow struct {
	ID            int64   `gorm:"column:id"`
	Name          string  `gorm:"column:name"`
	City          string  `gorm:"column:city"`
	Country       string  `gorm:"column:country"`
	PricePerNight float64 `gorm:"column:price_per_night"`
}

func (r *LikeRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]LikedRow, error) {
	var rows []LikedRow
	err := r.db.WithContext(ctx).
		Table("likes").
		Select("accommodations.id, accommodations.name, accommodations.city, accommodations.country, accommodations.price_per_night").
		Joins("JOIN accommodations ON accommodations.id = likes.accommodation_id").
		Where("likes.user_id = ?", userID).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
