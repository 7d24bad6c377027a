// Package seed populates a development database with plausible fake data.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"threadapp/internal/middleware"
	"threadapp/internal/models"
	"threadapp/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

const (
	userCount         = 10
	threadsPerUser    = 3
	commentsPerThread = 2
	followsPerUser    = 3
	seedPassword      = "password123"
	likeChancePercent = 60
)

// Run fills the database with fake users, threads, comments, likes, and
// follows through the service layer, so notifications and uniqueness rules
// behave exactly as they do in production. Duplicate collisions from the
// random picks are expected and skipped.
func Run(ctx context.Context, db *gorm.DB, authService *service.AuthService) error {
	faker := gofakeit.New(0)

	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		username := strings.ToLower(fmt.Sprintf("%s%d", faker.Username(), i))
		email := fmt.Sprintf("%s@%s", username, faker.DomainName())

		user, err := authService.Register(ctx, username, email, seedPassword)
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", username, err)
		}
		users = append(users, user)
	}
	middleware.Logger.Info("seeded users", "count", len(users), "password", seedPassword)

	threadService := service.NewThreadService(db)
	commentService := service.NewCommentService(db)
	likeService := service.NewLikeService(db)
	followService := service.NewFollowService(db)

	var threads []*models.Thread
	for _, user := range users {
		for i := 0; i < threadsPerUser; i++ {
			thread, err := threadService.Create(ctx, user.ID, faker.Sentence(12))
			if err != nil {
				return fmt.Errorf("seeding thread: %w", err)
			}
			threads = append(threads, thread)
		}
	}

	for _, thread := range threads {
		for i := 0; i < commentsPerThread; i++ {
			commenter := users[rand.Intn(len(users))]
			if _, err := commentService.Create(ctx, commenter.ID, thread.ID, faker.Sentence(8)); err != nil {
				return fmt.Errorf("seeding comment: %w", err)
			}
		}

		if rand.Intn(100) < likeChancePercent {
			liker := users[rand.Intn(len(users))]
			if _, err := likeService.Create(ctx, liker.ID, &thread.ID, nil); err != nil {
				if !isExpectedCollision(err) {
					return fmt.Errorf("seeding like: %w", err)
				}
			}
		}
	}

	for _, user := range users {
		for i := 0; i < followsPerUser; i++ {
			target := users[rand.Intn(len(users))]
			if _, err := followService.Follow(ctx, user.ID, target.ID); err != nil {
				if !isExpectedCollision(err) {
					return fmt.Errorf("seeding follow: %w", err)
				}
			}
		}
	}

	middleware.Logger.Info("seeding complete",
		"users", len(users),
		"threads", len(threads),
	)
	return nil
}

// isExpectedCollision reports whether the error is a duplicate or self-target
// rejection from the random picks.
func isExpectedCollision(err error) bool {
	appErr, ok := err.(*models.AppError)
	return ok && (appErr.Code == models.CodeDuplicate || appErr.Code == models.CodeValidation)
}
