package service

import (
	"context"
	"strings"

	"threadapp/internal/models"
	"threadapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxContentLength bounds thread and comment bodies.
const maxContentLength = 1000

// ThreadService handles thread creation, listing, and owner-scoped deletion.
type ThreadService struct {
	db *gorm.DB
}

// NewThreadService creates a new ThreadService.
func NewThreadService(db *gorm.DB) *ThreadService {
	return &ThreadService{db: db}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLength {
		return "", models.NewValidationError("Content is too long")
	}
	return content, nil
}

// Create persists a new thread owned by userID.
func (s *ThreadService) Create(ctx context.Context, userID uuid.UUID, content string) (*models.Thread, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	thread := &models.Thread{UserID: userID, Content: content}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.NewThreadRepository(tx).Create(ctx, thread)
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// Get returns a thread by ID with its comment and like counts.
func (s *ThreadService) Get(ctx context.Context, id uuid.UUID) (*models.Thread, error) {
	return repository.NewThreadRepository(s.db).GetByID(ctx, id)
}

// List returns threads ordered newest first.
func (s *ThreadService) List(ctx context.Context, limit, offset int) ([]models.Thread, error) {
	return repository.NewThreadRepository(s.db).List(ctx, limit, offset)
}

// ListByUser returns a user's threads ordered newest first.
func (s *ThreadService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Thread, error) {
	return repository.NewThreadRepository(s.db).ListByUser(ctx, userID, limit, offset)
}

// Delete removes a thread. Only the owner may delete it.
func (s *ThreadService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		threads := repository.NewThreadRepository(tx)

		thread, err := threads.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if thread.UserID != userID {
			return models.NewUnauthorizedError("You can only delete your own threads")
		}
		return threads.Delete(ctx, id)
	})
}
