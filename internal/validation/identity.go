// Package validation holds input validation rules for user identity fields.
package validation

import (
	"regexp"
	"strings"

	"threadapp/internal/models"
)

// emailPattern requires a local part, an @, and a dotted domain. It is
// intentionally permissive; deliverability is not checked.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)

// NormalizeIdentity lowercases and trims an identity value (username, email,
// or login identifier). All storage and lookups use the normalized form,
// which is what makes uniqueness and login case-insensitive.
func NormalizeIdentity(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ValidateEmail checks the address against the email pattern.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return models.NewValidationError("Invalid email format")
	}
	return nil
}
