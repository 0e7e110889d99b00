package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries environment-driven settings for the API process. It is
// built once in main and passed by reference into constructors instead of
// living in package-level globals.
type Config struct {
	Port             string
	MongoURI         string
	Database         string
	JWTSecret        string
	StripeSecretKey  string
	FrontendURL      string
	Currency         string
	DeliveryCharge   float64
	PostmarkAPIToken string
	EmailSender      string
	SweepInterval    int // minutes; 0 disables the stale-order sweep
	SweepMaxAge      int // minutes
}

// Load reads environment variables, applies defaults, and validates basic constraints.
func Load() (Config, error) {
	cfg := Config{
		Port:             envDefault("PORT", "4000"),
		MongoURI:         envDefault("MONGO_URI", "mongodb://localhost:27017"),
		Database:         envDefault("MONGO_DATABASE", "foodorder"),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StripeSecretKey:  strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		FrontendURL:      envDefault("FRONTEND_URL", "http://localhost:5173"),
		Currency:         envDefault("CURRENCY", "inr"),
		DeliveryCharge:   50,
		PostmarkAPIToken: strings.TrimSpace(os.Getenv("POSTMARK_API_TOKEN")),
		EmailSender:      strings.TrimSpace(os.Getenv("EMAIL_SENDER")),
		SweepMaxAge:      60,
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}
	if raw := strings.TrimSpace(os.Getenv("DELIVERY_CHARGE")); raw != "" {
		charge, err := strconv.ParseFloat(raw, 64)
		if err != nil || charge < 0 {
			return Config{}, fmt.Errorf("DELIVERY_CHARGE must be a non-negative number")
		}
		cfg.DeliveryCharge = charge
	}
	if raw := strings.TrimSpace(os.Getenv("STALE_ORDER_SWEEP_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return Config{}, fmt.Errorf("STALE_ORDER_SWEEP_MINUTES must be a non-negative integer")
		}
		cfg.SweepInterval = minutes
	}
	if raw := strings.TrimSpace(os.Getenv("STALE_ORDER_MAX_AGE_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("STALE_ORDER_MAX_AGE_MINUTES must be a positive integer")
		}
		cfg.SweepMaxAge = minutes
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
