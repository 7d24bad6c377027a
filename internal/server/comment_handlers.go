package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment adds a comment to a thread.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	threadID, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.Context(), currentUserID(c), threadID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments returns a thread's comments oldest first.
func (s *Server) ListComments(c *fiber.Ctx) error {
	threadID, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	limit, offset := pagination(c)

	comments, err := s.commentService.ListByThread(c.Context(), threadID, limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}
