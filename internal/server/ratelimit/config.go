package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier is a rate budget applied to a group of endpoints.
type Tier struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Config controls the limiter.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	generationTier  Tier
	defaultTier     Tier
}

// LoadConfig reads limiter settings from the environment. Generation
// endpoints (Gemini-backed) get a much smaller budget than the rest.
func LoadConfig() *Config {
	enabled := true
	if raw := os.Getenv("RATE_LIMIT_ENABLED"); raw != "" {
		enabled = raw == "true" || raw == "1"
	}

	return &Config{
		Enabled:         enabled,
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		generationTier: Tier{
			Name:   "generation",
			Limit:  envInt("RATE_LIMIT_GENERATION_LIMIT", 30),
			Window: envDuration("RATE_LIMIT_GENERATION_WINDOW", time.Hour),
		},
		defaultTier: Tier{
			Name:   "default",
			Limit:  envInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
			Window: envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		},
	}
}

// generationPaths are the endpoints that call out to Gemini or YouTube.
var generationPaths = []string{
	"/api/roadmap",
	"/api/analytics",
	"/api/quiz",
	"/api/videos",
	"/api/dashboard",
}

func (c *Config) tierFor(path string) Tier {
	for _, p := range generationPaths {
		if strings.HasPrefix(path, p) {
			return c.generationTier
		}
	}
	return c.defaultTier
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
