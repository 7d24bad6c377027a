package service

import (
	"context"
	"fmt"

	"threadapp/internal/models"
	"threadapp/internal/observability"
	"threadapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowService manages follow edges between users.
type FollowService struct {
	db *gorm.DB
}

// NewFollowService creates a new FollowService.
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow creates a follow edge from followerID to followingID and notifies
// the followed user. Self-follows are rejected.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uuid.UUID) (*models.Follow, error) {
	if followerID == followingID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		if _, err := users.GetByID(ctx, followingID); err != nil {
			return err
		}

		follows := repository.NewFollowRepository(tx)

		// Pre-check for a friendly error; the unique index still decides races.
		exists, err := follows.Exists(ctx, followerID, followingID)
		if err != nil {
			return err
		}
		if exists {
			return models.NewDuplicateError("Already following this user")
		}

		if err := follows.Create(ctx, follow); err != nil {
			return err
		}

		actor, err := users.GetByID(ctx, followerID)
		if err != nil {
			return err
		}
		notification := &models.Notification{
			UserID:  followingID,
			Message: fmt.Sprintf("%s started following you", actor.Username),
		}
		if err := repository.NewNotificationRepository(tx).Create(ctx, notification); err != nil {
			return err
		}
		observability.NotificationsCreated.WithLabelValues("follow").Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return follow, nil
}

// Unfollow removes the follow edge. Removing an edge that does not exist is
// a not-found error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := repository.NewFollowRepository(tx).Delete(ctx, followerID, followingID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.NewNotFoundError("Follow", followingID)
		}
		return nil
	})
}

// Followers lists the users following userID.
func (s *FollowService) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Follow, error) {
	return repository.NewFollowRepository(s.db).ListFollowers(ctx, userID, limit, offset)
}

// Following lists the users userID follows.
func (s *FollowService) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Follow, error) {
	return repository.NewFollowRepository(s.db).ListFollowing(ctx, userID, limit, offset)
}
