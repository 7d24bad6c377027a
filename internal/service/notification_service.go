package service

import (
	"context"

	"threadapp/internal/models"
	"threadapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService exposes a user's notification feed.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ListByUser returns a user's notifications newest first.
func (s *NotificationService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	return repository.NewNotificationRepository(s.db).ListByUser(ctx, userID, limit, offset)
}

// MarkRead flags a notification as read. The update is scoped to the owner,
// so marking someone else's notification reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := repository.NewNotificationRepository(tx).MarkRead(ctx, id, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.NewNotFoundError("Notification", id)
		}
		return nil
	})
}
