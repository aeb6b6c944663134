package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default reserved administrator address. Every other email resolves to a
// regular user. Overridable via ADMIN_EMAIL.
const DefaultAdminEmail = "admin@losmecanics.com"

// Config holds the server configuration loaded from the environment
type Config struct {
	AdminEmail   string
	JWTSecret    string
	JWTExpHours  int64
	ServerPort   string
	SeedFixtures bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
		JWTSecret:    os.Getenv("JWT_SECRET_KEY"),
		ServerPort:   os.Getenv("SERVER_PORT"),
		JWTExpHours:  24,
		SeedFixtures: true,
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = DefaultAdminEmail
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080" // Default port
	}

	if expStr := os.Getenv("JWT_EXPIRATION_HOURS"); expStr != "" {
		exp, err := strconv.ParseInt(expStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		cfg.JWTExpHours = exp
	}

	if seedStr := os.Getenv("SEED_FIXTURES"); seedStr != "" {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_FIXTURES: %w", err)
		}
		cfg.SeedFixtures = seed
	}

	return cfg, nil
}
