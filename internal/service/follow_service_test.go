package service

import (
	"context"
	"testing"

	"threadapp/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCreatesEdgeAndNotification(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "alice@example.com")
	bob := registerUser(t, db, "bob", "bob@example.com")
	svc := NewFollowService(db)

	follow, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, follow.FollowerID)
	assert.Equal(t, bob.ID, follow.FollowingID)

	notifications, err := NewNotificationService(db).ListByUser(context.Background(), bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "alice started following you", notifications[0].Message)

	followers, err := svc.Followers(context.Background(), bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].FollowerID)

	following, err := svc.Following(context.Background(), alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].FollowingID)
}

func TestFollowRejectsSelfAndUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "alice@example.com")
	svc := NewFollowService(db)

	_, err := svc.Follow(context.Background(), alice.ID, alice.ID)
	requireAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Follow(context.Background(), alice.ID, uuid.New())
	requireAppErrorCode(t, err, models.CodeNotFound)

	assert.Zero(t, countRows(t, db, &models.Follow{}))
}

func TestFollowDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "alice@example.com")
	bob := registerUser(t, db, "bob", "bob@example.com")
	svc := NewFollowService(db)

	_, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.Follow(context.Background(), alice.ID, bob.ID)
	requireAppErrorCode(t, err, models.CodeDuplicate)

	assert.EqualValues(t, 1, countRows(t, db, &models.Follow{}))
	// The failed duplicate attempt must not leave a stray notification behind.
	assert.EqualValues(t, 1, countRows(t, db, &models.Notification{}))
}

func TestUnfollowRemovesEdge(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "alice@example.com")
	bob := registerUser(t, db, "bob", "bob@example.com")
	svc := NewFollowService(db)

	_, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unfollow(context.Background(), alice.ID, bob.ID))

	err = svc.Unfollow(context.Background(), alice.ID, bob.ID)
	requireAppErrorCode(t, err, models.CodeNotFound)

	// Re-following after an unfollow is allowed.
	_, err = svc.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
}
