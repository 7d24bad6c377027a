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

// CommentService handles commenting on threads and notifying thread owners.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a new CommentService.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create adds a comment to a thread. The thread owner gets a notification in
// the same transaction, unless they commented on their own thread.
func (s *CommentService) Create(ctx context.Context, userID, threadID uuid.UUID, content string) (*models.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{UserID: userID, ThreadID: threadID, Content: content}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		thread, err := repository.NewThreadRepository(tx).GetByID(ctx, threadID)
		if err != nil {
			return err
		}

		if err := repository.NewCommentRepository(tx).Create(ctx, comment); err != nil {
			return err
		}

		if thread.UserID == userID {
			return nil
		}
		actor, err := repository.NewUserRepository(tx).GetByID(ctx, userID)
		if err != nil {
			return err
		}
		notification := &models.Notification{
			UserID:  thread.UserID,
			Message: fmt.Sprintf("%s commented on your thread", actor.Username),
		}
		if err := repository.NewNotificationRepository(tx).Create(ctx, notification); err != nil {
			return err
		}
		observability.NotificationsCreated.WithLabelValues("comment").Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByThread returns a thread's comments oldest first.
func (s *CommentService) ListByThread(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]models.Comment, error) {
	if _, err := repository.NewThreadRepository(s.db).GetByID(ctx, threadID); err != nil {
		return nil, err
	}
	return repository.NewCommentRepository(s.db).ListByThread(ctx, threadID, limit, offset)
}
