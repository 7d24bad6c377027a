package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createLikeRequest struct {
	ThreadID  *uuid.UUID `json:"thread_id"`
	CommentID *uuid.UUID `json:"comment_id"`
}

// CreateLike likes a thread or a comment, exactly one per request.
func (s *Server) CreateLike(c *fiber.Ctx) error {
	var req createLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	like, err := s.likeService.Create(c.Context(), currentUserID(c), req.ThreadID, req.CommentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// DeleteLike removes the authenticated user's own like.
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.likeService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
