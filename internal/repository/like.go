package repository

import (
	"context"
	"errors"

	"threadapp/internal/models"
	"threadapp/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Like, error) {
	defer observability.TrackQuery("read", "likes")()

	var like models.Like
	if err := r.db.WithContext(ctx).First(&like, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	defer observability.TrackQuery("create", "likes")()

	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isDuplicateKey(err) {
			return models.NewDuplicateError("Already liked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer observability.TrackQuery("delete", "likes")()

	if err := r.db.WithContext(ctx).Delete(&models.Like{}, "id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
