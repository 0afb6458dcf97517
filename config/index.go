package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a key from the environment, loading .env once if present.
func Config(key string) string {
	loadEnv.Do(func() {
		godotenv.Load(".env")
	})
	return os.Getenv(key)
}

// ConfigDefault falls back when the key is unset or empty.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
