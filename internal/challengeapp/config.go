package challengeapp

import (
	"os"
	"strconv"
)

// Defaults used when the ConfigMap/Secret env vars are not injected.
const (
	defaultAppName = "K8s Challenge App"
	defaultEnv     = "development"
	defaultAPIKey  = "not-set"
)

// Config holds everything the demo app reads from its environment. It is
// built once at startup and passed to the server; handlers never read the
// environment themselves.
type Config struct {
	AppName  string
	Env      string
	LogLevel string
	APIKey   string
	Port     int
}

// FromEnv builds a Config from the environment the manifests inject:
// APP_NAME, FLASK_ENV, and LOG_LEVEL via the ConfigMap, API_KEY via the
// Secret, PORT for local runs.
func FromEnv() Config {
	return Config{
		AppName:  envOr("APP_NAME", defaultAppName),
		Env:      envOr("FLASK_ENV", defaultEnv),
		LogLevel: envOr("LOG_LEVEL", "INFO"),
		APIKey:   envOr("API_KEY", defaultAPIKey),
		Port:     envIntOr("PORT", 5000),
	}
}

// ConfigLoaded reports whether the ConfigMap overrode the default app name.
func (c Config) ConfigLoaded() bool {
	return c.AppName != defaultAppName
}

// SecretLoaded reports whether a real API key was injected.
func (c Config) SecretLoaded() bool {
	return c.APIKey != defaultAPIKey && c.APIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
