// Package config handles configuration loading for the todo service.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all configuration for the todo service.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	Port            string
	Environment     string
}

// Load reads configuration from environment variables.
// JWT_SECRET has no default; the process refuses to start without it.
func Load() *Config {
	return &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnvRequired("DB_PORT"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		JWTSecret:       getEnvRequired("JWT_SECRET"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "30m"), 30*time.Minute),
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
