// Package service contains the business logic between HTTP handlers and
// repositories.
package service

import (
	"context"

	"threadapp/internal/auth"
	"threadapp/internal/models"
	"threadapp/internal/repository"
	"threadapp/internal/validation"

	"gorm.io/gorm"
)

// AuthService is the credential service: it registers accounts and verifies
// login credentials. Uniqueness is pre-checked for a friendly error message,
// but the database unique constraints are the actual safety mechanism: a
// concurrent duplicate registration loses the insert race and still comes
// back as a DuplicateError.
type AuthService struct {
	db     *gorm.DB
	hasher *auth.PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *gorm.DB, hasher *auth.PasswordHasher) *AuthService {
	return &AuthService{db: db, hasher: hasher}
}

// Register normalizes and validates the identity, hashes the password, and
// persists the new user. Exactly one durable write happens on success; any
// failure rolls the transaction back and leaves no partial state.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = validation.NormalizeIdentity(username)
	email = validation.NormalizeIdentity(email)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError("Invalid email format")
	}

	user := &models.User{
		Username: username,
		Email:    email,
		IsActive: true,
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Password = hashed

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		exists, err := users.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if exists {
			return models.NewDuplicateError("Username or email already registered")
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Verify looks up a user by username or email and checks the password
// against the stored hash. Lookup miss and password mismatch are deliberately
// indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = validation.NormalizeIdentity(identifier)

	users := repository.NewUserRepository(s.db)
	user, err := users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(user.Password, password) {
		return nil, models.NewInvalidCredentialsError()
	}

	return user, nil
}
