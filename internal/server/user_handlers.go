package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser returns the authenticated user's own profile.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetUser returns a user's public profile.
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// ListUsers returns public profiles for directory browsing.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	users, err := s.userService.List(c.Context(), limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(users)
}

// ListUserThreads returns a user's threads newest first.
func (s *Server) ListUserThreads(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	limit, offset := pagination(c)

	threads, err := s.threadService.ListByUser(c.Context(), id, limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(threads)
}
