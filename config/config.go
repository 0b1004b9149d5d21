package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from .env, falling back to the process
// environment when the file is absent.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the value of key or fallback when unset.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
