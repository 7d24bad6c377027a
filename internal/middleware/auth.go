package middleware

import (
	"strings"

	"threadapp/internal/auth"
	"threadapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key under which the authenticated user's ID is stored.
const UserIDKey = "userID"

// AuthRequired returns a middleware that validates the Bearer token and
// stores the authenticated user's ID in the request Locals.
func AuthRequired(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Authorization required"))
		}

		userID, err := issuer.Parse(tokenString)
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
