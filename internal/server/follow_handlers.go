package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Follow makes the authenticated user follow the user in the path.
func (s *Server) Follow(c *fiber.Ctx) error {
	followingID, err := paramUUID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	follow, err := s.followService.Follow(c.Context(), currentUserID(c), followingID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// Unfollow removes the follow edge to the user in the path.
func (s *Server) Unfollow(c *fiber.Ctx) error {
	followingID, err := paramUUID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), followingID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFollowers returns the users following the authenticated user.
func (s *Server) ListFollowers(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	followers, err := s.followService.Followers(c.Context(), currentUserID(c), limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(followers)
}

// ListFollowing returns the users the authenticated user follows.
func (s *Server) ListFollowing(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	following, err := s.followService.Following(c.Context(), currentUserID(c), limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(following)
}
