package repository

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

// Create inserts the accommodation together with its images in one
// transaction. Image positions are assigned from upload order, 1-based.
func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation, images [][]byte) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		for i, content := range images {
			img := domain.AccommodationImage{
				AccommodationID: a.ID,
				Position:        i + 1,
				Content:         content,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves the accommodation and, when images is non-nil, replaces the
// whole image set.
func (r *AccommodationRepository) Update(ctx context.Context, a *domain.Accommodation, images [][]byte) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		if images == nil {
			return nil
		}
		if err := tx.Where("accommodation_id = ?", a.ID).Delete(&domain.AccommodationImage{}).Error; err != nil {
			return err
		}
		for i, content := range images {
			img := domain.AccommodationImage{
				AccommodationID: a.ID,
				Position:        i + 1,
				Content:         content,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteOwned removes the accommodation with its images and likes when it
// belongs to ownerID. Reservations are deliberately left in place (see
// DESIGN.md on orphaned reservations). Reports whether a row was deleted.
func (r *AccommodationRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&domain.Accommodation{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return nil
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.AccommodationImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Accommodation{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var a domain.Accommodation
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetOwnerAndName fetches just the fields the like notification needs.
func (r *AccommodationRepository) GetOwnerAndName(ctx context.Context, id int64) (int64, string, error) {
	var a domain.Accommodation
	err := r.db.WithContext(ctx).
		Select("id, owner_id, name").
		First(&a, id).Error
	if err != nil {
		return 0, "", err
	}
	return a.OwnerID, a.Name, nil
}

func (r *AccommodationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Accommodation, error) {
	var list []domain.Accommodation
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&list).Error
	return list, err
}

// ListCandidates returns the search candidate set. minGuests <= 0 means no
// capacity filter; geography and availability are filtered by the caller.
func (r *AccommodationRepository) ListCandidates(ctx context.Context, minGuests int) ([]domain.Accommodation, error) {
	q := r.db.WithContext(ctx).Model(&domain.Accommodation{})
	if minGuests > 0 {
		q = q.Where("max_guests >= ?", minGuests)
	}
	var list []domain.Accommodation
	err := q.Find(&list).Error
	return list, err
}

// MainScreenRow is a listing summary with the caller's like state.
type MainScreenRow struct {
	ID            int64   `gorm:"column:id"`
	Name          string  `gorm:"column:name"`
	PricePerNight float64 `gorm:"column:price_per_night"`
	City          string  `gorm:"column:city"`
	Country       string  `gorm:"column:country"`
	IsLiked       bool    `gorm:"column:is_liked"`
}

// Random returns up to limit accommodations in random order, with is_liked
// resolved for userID.
func (r *AccommodationRepository) Random(ctx context.Context, userID int64, limit int) ([]MainScreenRow, error) {
	var rows []MainScreenRow
	err := r.db.WithContext(ctx).
		Table("accommodations").
		Select("accommodations.id, accommodations.name, accommodations.price_per_night, accommodations.city, accommodations.country, likes.accommodation_id IS NOT NULL AS is_liked").
		Joins("LEFT JOIN likes ON likes.accommodation_id = accommodations.id AND likes.user_id = ?", userID).
		Order("RANDOM()").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *AccommodationRepository) CountImages(ctx context.Context, id int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.AccommodationImage{}).
		Where("accommodation_id = ?", id).
		Count(&cnt).Error
	return cnt, err
}

// GetImage returns the image at the 1-based index in upload order, or
// gorm.ErrRecordNotFound when the index is past the end.
func (r *AccommodationRepository) GetImage(ctx context.Context, id int64, index int) ([]byte, error) {
	var img domain.AccommodationImage
	err := r.db.WithContext(ctx).
		Where("accommodation_id = ?", id).
		Order("position").
		Offset(index - 1).
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return img.Content, nil
}
