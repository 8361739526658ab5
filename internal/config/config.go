package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
// It is built once in main and never mutated afterwards. KeySecret
// stays inside the payment service and is never serialized.
type Config struct {
	AppPort        string
	AppEnv         string
	Currency       string
	CORSOrigin     string
	GatewayBaseURL string
	KeyID          string
	KeySecret      string
}

var ErrMissingCredentials = errors.New("razorpay credentials are missing in environment variables")

// Load reads the process environment, optionally seeded from a .env
// file. Missing gateway credentials are fatal: the process must never
// come up able to accept a request it cannot sign-check.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getenv("APP_PORT", "8080"),
		AppEnv:         os.Getenv("APP_ENV"),
		Currency:       getenv("CURRENCY", "INR"),
		CORSOrigin:     getenv("CORS_ORIGIN", "http://localhost:3000"),
		GatewayBaseURL: getenv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		KeyID:          os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret:      os.Getenv("RAZORPAY_KEY_SECRET"),
	}

	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
