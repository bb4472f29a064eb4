package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings, read once at startup.
type Config struct {
	MongoURI     string
	DatabaseName string
	Port         string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	return &Config{
		MongoURI:     getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", ""),
		Port:         getEnv("PORT", "8000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
