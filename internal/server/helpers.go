package server

import (
	"threadapp/internal/middleware"
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// currentUserID returns the authenticated user's ID from the request Locals.
// AuthRequired guarantees it is set on protected routes.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(middleware.UserIDKey).(uuid.UUID)
	return id
}

// paramUUID parses a UUID path parameter.
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, models.NewValidationError("Invalid ID format")
	}
	return id, nil
}

// pagination reads limit/offset query parameters with sane bounds.
func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
