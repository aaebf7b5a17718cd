package config

import (
	"fmt"
	"os"
)

// Recognized token variables, checked in priority order.
const (
	TokenEnvVar         = "GITHUB_TOKEN"
	FallbackTokenEnvVar = "GH_TOKEN"
)

// TokenFromEnv resolves the GitHub token from the environment. The
// lookup happens once at the call boundary; the resolved value is
// passed into the fetcher rather than read globally.
func TokenFromEnv() (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	if token := os.Getenv(FallbackTokenEnvVar); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no github token found: set %s or %s", TokenEnvVar, FallbackTokenEnvVar)
}
