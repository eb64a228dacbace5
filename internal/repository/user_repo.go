package repository

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Count(&cnt).Error
	return cnt > 0, err
}

// PromoteToOwner upgrades a guest to owner. A no-op for users who already
// own listings.
func (r *UserRepository) PromoteToOwner(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ? AND role = ?", id, domain.RoleGuest).
		Update("role", domain.RoleOwner).Error
}
