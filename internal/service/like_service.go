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

// LikeService handles liking threads and comments. A like targets exactly one
// of the two; the unique indexes on (user, thread) and (user, comment) keep
// repeat likes out even under concurrent requests.
type LikeService struct {
	db *gorm.DB
}

// NewLikeService creates a new LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Create records a like on a thread or a comment and notifies the content
// owner in the same transaction.
func (s *LikeService) Create(ctx context.Context, userID uuid.UUID, threadID, commentID *uuid.UUID) (*models.Like, error) {
	if (threadID == nil) == (commentID == nil) {
		return nil, models.NewValidationError("Provide exactly one of thread_id or comment_id")
	}

	like := &models.Like{UserID: userID, ThreadID: threadID, CommentID: commentID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ownerID uuid.UUID
		var target string
		if threadID != nil {
			thread, err := repository.NewThreadRepository(tx).GetByID(ctx, *threadID)
			if err != nil {
				return err
			}
			ownerID, target = thread.UserID, "thread"
		} else {
			comment, err := repository.NewCommentRepository(tx).GetByID(ctx, *commentID)
			if err != nil {
				return err
			}
			ownerID, target = comment.UserID, "comment"
		}

		if err := repository.NewLikeRepository(tx).Create(ctx, like); err != nil {
			return err
		}

		if ownerID == userID {
			return nil
		}
		actor, err := repository.NewUserRepository(tx).GetByID(ctx, userID)
		if err != nil {
			return err
		}
		notification := &models.Notification{
			UserID:  ownerID,
			Message: fmt.Sprintf("%s liked your %s", actor.Username, target),
		}
		if err := repository.NewNotificationRepository(tx).Create(ctx, notification); err != nil {
			return err
		}
		observability.NotificationsCreated.WithLabelValues("like").Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return like, nil
}

// Delete removes a like. Only the user who created it may remove it.
func (s *LikeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)

		like, err := likes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if like.UserID != userID {
			return models.NewUnauthorizedError("You can only remove your own likes")
		}
		return likes.Delete(ctx, id)
	})
}
