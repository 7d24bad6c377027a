package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"threadapp/internal/auth"
	"threadapp/internal/database"
	"threadapp/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey,
// the same way the postgres driver reports them in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestHasher uses a low iteration count to keep test runs fast.
func newTestHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasherWithIterations(1000)
}

func registerUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user, err := NewAuthService(db, newTestHasher()).Register(context.Background(), username, email, "password123")
	require.NoError(t, err)
	return user
}

func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
