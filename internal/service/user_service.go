package service

import (
	"context"
	"fmt"
	"time"

	"threadapp/internal/cache"
	"threadapp/internal/models"
	"threadapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileTTL bounds how stale a cached profile may get.
const profileTTL = 60 * time.Second

// UserService reads user profiles, fronted by a cache-aside Redis store.
type UserService struct {
	db    *gorm.DB
	cache *cache.Store
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB, store *cache.Store) *UserService {
	return &UserService{db: db, cache: store}
}

func profileKey(id uuid.UUID) string {
	return fmt.Sprintf("user:profile:%s", id)
}

// GetProfile returns a user's public profile, served from cache when warm.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	var profile models.UserResponse
	err := s.cache.Aside(ctx, profileKey(id), &profile, profileTTL, func() error {
		user, err := repository.NewUserRepository(s.db).GetByID(ctx, id)
		if err != nil {
			return err
		}
		profile = user.Public()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns users for directory-style listing.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.UserResponse, error) {
	users, err := repository.NewUserRepository(s.db).List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	responses := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.Public())
	}
	return responses, nil
}
