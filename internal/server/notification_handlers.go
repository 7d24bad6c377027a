package server

import (
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the authenticated user's notifications newest first.
func (s *Server) ListNotifications(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	notifications, err := s.notificationService.ListByUser(c.Context(), currentUserID(c), limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(notifications)
}

// MarkNotificationRead flags one of the authenticated user's notifications as read.
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.notificationService.MarkRead(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
