package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "alice", NormalizeIdentity("  Alice  "))
	assert.Equal(t, "alice@example.com", NormalizeIdentity("Alice@Example.COM"))
	assert.Equal(t, "", NormalizeIdentity("   "))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user.name+tag@example.co.uk",
		"under_score@sub-domain.example.org",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@localhost",
		"user name@example.com",
		"user@exam ple.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}
