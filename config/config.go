package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	return os.Getenv(key)
}

// ConfigOr returns the env value or a fallback when unset.
func ConfigOr(key, fallback string) string {
	v := Config(key)
	if v == "" {
		return fallback
	}
	return v
}
