package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(generationLimit, defaultLimit int) *Config {
	return &Config{
		Enabled:         true,
		CleanupInterval: time.Minute,
		generationTier:  Tier{Name: "generation", Limit: generationLimit, Window: time.Hour},
		defaultTier:     Tier{Name: "default", Limit: defaultLimit, Window: time.Minute},
	}
}

func TestAllow_EnforcesBudget(t *testing.T) {
	l := NewLimiter(testConfig(3, 100))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "/api/roadmap")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1", "/api/roadmap")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(1, 100))
	defer l.Stop()

	allowed, _ := l.Allow("10.0.0.1", "/api/quiz")
	require.True(t, allowed)
	allowed, _ = l.Allow("10.0.0.1", "/api/quiz")
	require.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.2", "/api/quiz")
	assert.True(t, allowed)
}

func TestAllow_TiersAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(1, 100))
	defer l.Stop()

	allowed, _ := l.Allow("10.0.0.1", "/api/dashboard")
	require.True(t, allowed)
	allowed, _ = l.Allow("10.0.0.1", "/api/dashboard")
	require.False(t, allowed)

	// The generation tier being exhausted does not block the default tier.
	allowed, info := l.Allow("10.0.0.1", "/api/questionnaire")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestAllow_DisabledPassesEverything(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Enabled = false
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("10.0.0.1", "/api/roadmap")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestBucket_Refills(t *testing.T) {
	b := newBucket(10, 100*time.Millisecond)

	for i := 0; i < 10; i++ {
		allowed, _ := b.allow()
		require.True(t, allowed)
	}
	allowed, _ := b.allow()
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, remaining := b.allow()
	assert.True(t, allowed)
	assert.Equal(t, 9, remaining)
}

func TestTierFor(t *testing.T) {
	cfg := testConfig(30, 600)

	assert.Equal(t, "generation", cfg.tierFor("/api/roadmap").Name)
	assert.Equal(t, "generation", cfg.tierFor("/api/quiz").Name)
	assert.Equal(t, "generation", cfg.tierFor("/api/videos").Name)
	assert.Equal(t, "default", cfg.tierFor("/api/questionnaire").Name)
	assert.Equal(t, "default", cfg.tierFor("/health").Name)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_GENERATION_LIMIT", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.generationTier.Limit)
	assert.Equal(t, time.Hour, cfg.generationTier.Window)
	assert.Equal(t, 600, cfg.defaultTier.Limit)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_GENERATION_LIMIT", "5")
	t.Setenv("RATE_LIMIT_GENERATION_WINDOW", "10m")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.generationTier.Limit)
	assert.Equal(t, 10*time.Minute, cfg.generationTier.Window)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERATION_LIMIT", "not-a-number")
	t.Setenv("RATE_LIMIT_GENERATION_WINDOW", "-5m")

	cfg := LoadConfig()
	assert.Equal(t, 30, cfg.generationTier.Limit)
	assert.Equal(t, time.Hour, cfg.generationTier.Window)
}
