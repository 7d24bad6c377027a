package service

import (
	"context"
	"testing"

	"threadapp/internal/cache"
	"threadapp/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileServedFromCache(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	store := cache.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	svc := NewUserService(db, store)

	alice := registerUser(t, db, "alice", "alice@example.com")

	profile, err := svc.GetProfile(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.True(t, profile.IsActive)

	// A direct DB change is not visible until the cache entry expires.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", alice.ID).Update("username", "renamed").Error)

	cached, err := svc.GetProfile(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", cached.Username)

	mr.FastForward(profileTTL * 2)

	fresh, err := svc.GetProfile(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", fresh.Username)
}

func TestUserProfileWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, cache.NewStore(nil))

	alice := registerUser(t, db, "alice", "alice@example.com")

	profile, err := svc.GetProfile(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	requireAppErrorCode(t, err, models.CodeNotFound)
}

func TestUserList(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, cache.NewStore(nil))

	registerUser(t, db, "alice", "alice@example.com")
	registerUser(t, db, "bob", "bob@example.com")

	users, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
