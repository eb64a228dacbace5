package like

import (
	"context"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type LikeRepository interface {
	Toggle(ctx context.Context, userID, accommodationID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]repository.LikedRow, error)
}

type AccommodationRepository interface {
	GetOwnerAndName(ctx context.Context, id int64) (int64, string, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender pushes the like event to the owner's live connections.
// Delivery is best effort.
type NotificationSender interface {
	NotifyAccommodationLiked(ctx context.Context, ownerUserID int64, message string) error
}
