package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a variable from the environment, loading .env once if present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigOr returns a fallback when the variable is unset or empty.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
