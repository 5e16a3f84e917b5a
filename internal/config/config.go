package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every tunable the core needs. Components receive it through
// their constructors; there is no ambient global state.
type Config struct {
	DatabaseURL   string
	BcryptCost    int
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
}

func Default() *Config {
	return &Config{
		DatabaseURL:   "host=localhost user=postgres password=postgres dbname=gopherit port=5432 sslmode=disable",
		BcryptCost:    bcrypt.DefaultCost, // 10 rounds
		SessionTTL:    30 * 24 * time.Hour,
		ResetTokenTTL: time.Hour,
	}
}

// Load reads settings from the environment, with .env as a convenience for
// local dev, and applies defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := Default()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		if cost, err := strconv.Atoi(costStr); err == nil && cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			cfg.BcryptCost = cost
		}
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.SessionTTL = d
		}
	}
	if ttl := os.Getenv("RESET_TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.ResetTokenTTL = d
		}
	}

	return cfg
}
