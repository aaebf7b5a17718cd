package config_test

import (
	"testing"

	"repo-fetch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		githubToken string
		ghToken     string
		expected    string
		expectError bool
	}{
		{
			name:        "primary variable wins",
			githubToken: "primary",
			ghToken:     "fallback",
			expected:    "primary",
		},
		{
			name:     "fallback variable used when primary unset",
			ghToken:  "fallback",
			expected: "fallback",
		},
		{
			name:        "both unset is an error",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.TokenEnvVar, tt.githubToken)
			t.Setenv(config.FallbackTokenEnvVar, tt.ghToken)

			token, err := config.TokenFromEnv()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), config.TokenEnvVar)
				assert.Contains(t, err.Error(), config.FallbackTokenEnvVar)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
