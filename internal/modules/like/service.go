package like

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"staybook/internal/repository"
)

// likedListLimit caps the liked accommodations endpoint.
const likedListLimit = 20

type Service struct {
	likes          LikeRepository
	accommodations AccommodationRepository
	users          UserRepository
	notifications  NotificationSender
}

func NewService(likes LikeRepository, accommodations AccommodationRepository, users UserRepository, notifications NotificationSender) *Service {
	return &Service{
		likes:          likes,
		accommodations: accommodations,
		users:          users,
		notifications:  notifications,
	}
}

// Toggle flips the caller's like on the accommodation and notifies the owner
// over their live connections. Returns the new state: true when liked.
//
// The notification is best effort. The like is committed either way; an
// offline owner just misses the event.
func (s *Service) Toggle(ctx context.Context, userID, accommodationID int64) (bool, error) {
	ownerID, name, err := s.accommodations.GetOwnerAndName(ctx, accommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAccommodationNotFound
		}
		return false, err
	}

	liked, err := s.likes.Toggle(ctx, userID, accommodationID)
	if err != nil {
		return false, err
	}

	s.notifyOwner(ctx, ownerID, name, userID, liked)
	return liked, nil
}

func (s *Service) Liked(ctx context.Context, userID int64) ([]repository.LikedRow, error) {
	return s.likes.ListByUser(ctx, userID, likedListLimit)
}

func (s *Service) notifyOwner(ctx context.Context, ownerID int64, name string, likerID int64, liked bool) {
	liker, err := s.users.GetByID(ctx, likerID)
	if err != nil {
		log.Printf("like: loading liker %d for notification: %v", likerID, err)
		return
	}

	action := "unliked"
	if liked {
		action = "liked"
	}
	message := fmt.Sprintf("Your accommodation %q was %s by %s", name, action, liker.Email)

	if err := s.notifications.NotifyAccommodationLiked(ctx, ownerID, message); err != nil {
		log.Printf("like: notifying owner %d: %v", ownerID, err)
	}
}
