package server

import (
	"threadapp/internal/models"
	"threadapp/internal/observability"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	// Username accepts either a username or an email address.
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string              `json:"access_token"`
	User        models.UserResponse `json:"user"`
}

// Register creates a new account and returns an access token.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Username, email and password are required"))
	}

	user, err := s.authService.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		observability.RecordAuthAttempt("register", "failure")
		return models.RespondWithError(c, err)
	}

	token, err := s.tokenIssuer.Issue(user.ID)
	if err != nil {
		observability.RecordAuthAttempt("register", "failure")
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	observability.RecordAuthAttempt("register", "success")
	return c.Status(fiber.StatusCreated).JSON(authResponse{
		AccessToken: token,
		User:        user.Public(),
	})
}

// Login verifies credentials and returns an access token. All failures look
// identical to the caller.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}
	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	user, err := s.authService.Verify(c.Context(), req.Username, req.Password)
	if err != nil {
		observability.RecordAuthAttempt("login", "failure")
		return models.RespondWithError(c, err)
	}

	token, err := s.tokenIssuer.Issue(user.ID)
	if err != nil {
		observability.RecordAuthAttempt("login", "failure")
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	observability.RecordAuthAttempt("login", "success")
	return c.JSON(authResponse{
		AccessToken: token,
		User:        user.Public(),
	})
}
