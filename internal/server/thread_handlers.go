package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createThreadRequest struct {
	Content string `json:"content"`
}

// CreateThread creates a thread owned by the authenticated user.
func (s *Server) CreateThread(c *fiber.Ctx) error {
	var req createThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	thread, err := s.threadService.Create(c.Context(), currentUserID(c), req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// GetThread returns a thread with its comment and like counts.
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	thread, err := s.threadService.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(thread)
}

// ListThreads returns threads newest first.
func (s *Server) ListThreads(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	threads, err := s.threadService.List(c.Context(), limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(threads)
}

// DeleteThread deletes the authenticated user's own thread.
func (s *Server) DeleteThread(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.threadService.Delete(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
