package repository

import (
	"context"
	"errors"

	"threadapp/internal/models"
	"threadapp/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThreadRepository defines the interface for thread data operations
type ThreadRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Thread, error)
	Create(ctx context.Context, thread *models.Thread) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]models.Thread, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Thread, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository creates a new thread repository
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Thread, error) {
	defer observability.TrackQuery("read", "threads")()

	var thread models.Thread
	if err := r.db.WithContext(ctx).First(&thread, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Thread", id)
		}
		return nil, models.NewInternalError(err)
	}

	if err := r.attachCounts(ctx, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	defer observability.TrackQuery("create", "threads")()

	if err := r.db.WithContext(ctx).Create(thread).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer observability.TrackQuery("delete", "threads")()

	if err := r.db.WithContext(ctx).Delete(&models.Thread{}, "id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) List(ctx context.Context, limit, offset int) ([]models.Thread, error) {
	defer observability.TrackQuery("read", "threads")()

	var threads []models.Thread
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&threads).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return threads, nil
}

func (r *threadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Thread, error) {
	defer observability.TrackQuery("read", "threads")()

	var threads []models.Thread
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&threads).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return threads, nil
}

// attachCounts fills the computed comment and like counts for a thread.
func (r *threadRepository) attachCounts(ctx context.Context, thread *models.Thread) error {
	var comments, likes int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("thread_id = ?", thread.ID).Count(&comments).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("thread_id = ?", thread.ID).Count(&likes).Error; err != nil {
		return models.NewInternalError(err)
	}
	thread.CommentsCount = int(comments)
	thread.LikesCount = int(likes)
	return nil
}
