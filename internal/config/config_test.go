package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Development with defaults",
			config: Config{
				Env:       "development",
				Port:      "8080",
				JWTSecret: "your-secret-key-change-in-production",
				DBSSLMode: "disable",
			},
		},
		{
			name: "Missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "secret",
			},
			expectError: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Env:  "development",
				Port: "8080",
			},
			expectError: true,
		},
		{
			name: "Production with default JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
			expectError: true,
		},
		{
			name: "Production with short JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "short",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
			expectError: true,
		},
		{
			name: "Production with SSL disabled",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "disable",
			},
			expectError: true,
		},
		{
			name: "Production fully configured",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")
	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "threadapp", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.NotEmpty(t, c.JWTSecret)
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}
