package service

import (
	"context"
	"strings"
	"testing"

	"threadapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "alice@example.com")
	svc := NewThreadService(db)

	thread, err := svc.Create(context.Background(), user.ID, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", thread.Content)

	fetched, err := svc.Get(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.UserID)
	assert.Zero(t, fetched.CommentsCount)
	assert.Zero(t, fetched.LikesCount)
}

func TestThreadCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "alice@example.com")
	svc := NewThreadService(db)

	_, err := svc.Create(context.Background(), user.ID, "   ")
	requireAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.Create(context.Background(), user.ID, strings.Repeat("x", maxContentLength+1))
	requireAppErrorCode(t, err, models.CodeValidation)

	assert.Zero(t, countRows(t, db, &models.Thread{}))
}

func TestThreadDeleteIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice", "alice@example.com")
	bob := registerUser(t, db, "bob", "bob@example.com")
	svc := NewThreadService(db)

	thread, err := svc.Create(context.Background(), alice.ID, "mine")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), thread.ID, bob.ID)
	requireAppErrorCode(t, err, models.CodeUnauthorized)

	require.NoError(t, svc.Delete(context.Background(), thread.ID, alice.ID))

	_, err = svc.Get(context.Background(), thread.ID)
	requireAppErrorCode(t, err, models.CodeNotFound)
}

func TestThreadListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "alice@example.com")
	svc := NewThreadService(db)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), user.ID, content)
		require.NoError(t, err)
	}

	threads, err := svc.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.True(t, !threads[0].CreatedAt.Before(threads[1].CreatedAt))
}
