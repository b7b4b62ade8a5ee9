package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the process reads from the environment. It is
// built once in main and handed to the components that need it; nothing in
// this package keeps global state.
type Config struct {
	ListenAddr string
	MongoURL   string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
}

const defaultTokenTTL = 30 * time.Minute

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		MongoURL:   os.Getenv("MONGO_URL"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   defaultTokenTTL,
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}
