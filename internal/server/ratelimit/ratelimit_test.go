package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Path: "/export", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/export", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/export", "POST")
	assert.True(t, allowed)
}

func TestLimiterBlocksBeyondBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/export", "POST")
	l.Allow("1.2.3.4", "/export", "POST")

	allowed, info := l.Allow("1.2.3.4", "/export", "POST")
	require.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/export", "POST")
	l.Allow("1.2.3.4", "/export", "POST")

	allowed, _ := l.Allow("5.6.7.8", "/export", "POST")
	assert.True(t, allowed, "a second client should have its own bucket")
}

func TestLimiterUnlimitedEndpoint(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for range 50 {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for range 50 {
		allowed, _ := l.Allow("1.2.3.4", "/export", "POST")
		require.True(t, allowed)
	}
}

func TestMatchFallsBackToDefault(t *testing.T) {
	cfg := testConfig()
	rule := cfg.match("/resumes", "GET")
	assert.Equal(t, cfg.DefaultLimit, rule.Limit)
	assert.Equal(t, cfg.DefaultWindow, rule.Window)
}

func TestMatchRequiresMethod(t *testing.T) {
	cfg := testConfig()
	rule := cfg.match("/export", "GET")
	assert.Equal(t, cfg.DefaultLimit, rule.Limit, "POST rule should not catch GET")
}

func TestLoadConfigDisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
