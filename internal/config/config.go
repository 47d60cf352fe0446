package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the reaction engine
type Config struct {
	Redis  RedisConfig
	Engine EngineConfig
}

// RedisConfig holds Redis-specific configuration for the policy store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EngineConfig holds resolver tuning
type EngineConfig struct {
	// StackDepth bounds nested reaction chains
	StackDepth int

	// RNGSeed seeds the Random AI policy roller for deterministic replay
	RNGSeed int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			StackDepth: getEnvAsIntOrDefault("REACTION_STACK_DEPTH", 8),
			RNGSeed:    int64(getEnvAsIntOrDefault("REACTION_RNG_SEED", 1)),
		},
	}

	if cfg.Engine.StackDepth < 1 {
		return nil, fmt.Errorf("REACTION_STACK_DEPTH must be at least 1")
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as an int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
