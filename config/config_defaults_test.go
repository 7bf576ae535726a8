package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, 300, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)

	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 5*time.Minute, cfg.Cache.FreshFor)
	assert.Equal(t, 10*time.Minute, cfg.Cache.RetainFor)
	assert.Equal(t, 15*time.Minute, cfg.Cache.RevalidateEvery)

	require.NotNil(t, cfg.Retry)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, 30*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, 2*time.Second, cfg.Retry.MutationDelay)

	require.NotNil(t, cfg.Connectivity)
	assert.NotEmpty(t, cfg.Connectivity.ProbeURL)

	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "noop", cfg.PubSub.Provider)

	require.NotNil(t, cfg.Push)
	assert.Equal(t, "cafes-", cfg.Push.TopicPrefix)
}

func TestApplyDefaults_DoesNotInventRequiredSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// Sheets and Session must stay nil so that store and token constructors
	// fail fast instead of running against a half-configured backend.
	assert.Nil(t, cfg.Sheets)
	assert.Nil(t, cfg.Session)
}

func TestApplyDefaults_FillsSheetRanges(t *testing.T) {
	cfg := &Config{Sheets: &SheetsConfig{SpreadsheetID: "sheet-id"}}
	cfg.applyDefaults()

	assert.Equal(t, "Cafes!A2:R1000", cfg.Sheets.CafeRange)
	assert.Equal(t, "Ratings!A2:J1000", cfg.Sheets.RatingRange)
	assert.Equal(t, 30*time.Second, cfg.Sheets.RequestTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		RateLimit: &RateLimitConfig{MaxRequests: 50, Window: 10 * time.Second},
		Sheets:    &SheetsConfig{SpreadsheetID: "sheet-id", CafeRange: "Cafes!A2:R50"},
	}
	cfg.applyDefaults()

	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "Cafes!A2:R50", cfg.Sheets.CafeRange)
}
