package config

import "os"

// GetEnv reads a configuration value from the environment.
// godotenv is loaded once in main, so .env values are visible here too.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOr reads a configuration value, falling back when it is unset or
// empty.
func GetEnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
