package service

import (
	"context"
	"strings"
	"testing"

	"threadapp/internal/models"
	"threadapp/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNormalizesIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestHasher())

	user, err := svc.Register(context.Background(), "Alice", "Alice@Example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, strings.HasPrefix(user.Password, "pbkdf2:sha256:"), "password must be stored hashed")
	assert.NotContains(t, user.Password, "s3cret-pass")
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestHasher())

	tests := []struct {
		name  string
		email string
	}{
		{"missing at sign", "not-an-email"},
		{"missing domain dot", "user@localhost"},
		{"empty local part", "@example.com"},
		{"embedded space", "user name@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), "bob", tt.email, "password123")
			requireAppErrorCode(t, err, models.CodeValidation)
		})
	}

	assert.Zero(t, countRows(t, db, &models.User{}), "validation failures must not write")
}

func TestRegisterDuplicateIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestHasher())

	registerUser(t, db, "bob", "bob@example.com")

	_, err := svc.Register(context.Background(), "BOB", "other@example.com", "password123")
	requireAppErrorCode(t, err, models.CodeDuplicate)

	_, err = svc.Register(context.Background(), "bobby", "Bob@Example.COM", "password123")
	requireAppErrorCode(t, err, models.CodeDuplicate)

	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
}

// A registration that races past the service pre-check still loses to the
// unique index: inserting through the repository directly must come back as
// a DuplicateError with exactly one row stored.
func TestRegisterDuplicateEnforcedByConstraint(t *testing.T) {
	db := newTestDB(t)
	registerUser(t, db, "alice", "alice@example.com")

	hashed, err := newTestHasher().Hash("password123")
	require.NoError(t, err)

	users := repository.NewUserRepository(db)

	err = users.Create(context.Background(), &models.User{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: hashed,
		IsActive: true,
	})
	requireAppErrorCode(t, err, models.CodeDuplicate)

	err = users.Create(context.Background(), &models.User{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: hashed,
		IsActive: true,
	})
	requireAppErrorCode(t, err, models.CodeDuplicate)

	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
}

func TestVerifyAcceptsUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestHasher())

	registered, err := svc.Register(context.Background(), "Alice", "Alice@Example.com", "s3cret-pass")
	require.NoError(t, err)

	byUsername, err := svc.Verify(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byUsername.ID)

	// Mixed-case email works because identifiers are normalized on both sides.
	byEmail, err := svc.Verify(context.Background(), "Alice@Example.COM", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
}

func TestVerifyFailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestHasher())

	registerUser(t, db, "alice", "alice@example.com")

	_, wrongPassword := svc.Verify(context.Background(), "alice", "wrong-pass")
	_, unknownUser := svc.Verify(context.Background(), "nobody", "wrong-pass")

	requireAppErrorCode(t, wrongPassword, models.CodeInvalidCredentials)
	requireAppErrorCode(t, unknownUser, models.CodeInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error(),
		"lookup miss and password mismatch must be indistinguishable")
	assert.Equal(t, "Invalid credentials", wrongPassword.Error())
}
