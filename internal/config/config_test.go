package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TUTOR_TEST_KEY", "abc123")

	assert.Equal(t, "abc123", expandEnv("$TUTOR_TEST_KEY"))
	assert.Equal(t, "prefix-abc123", expandEnv("prefix-$TUTOR_TEST_KEY"))
	// Unset variables stay literal so Validate can catch them.
	assert.Equal(t, "$TUTOR_TEST_UNSET_VAR", expandEnv("$TUTOR_TEST_UNSET_VAR"))
	assert.Equal(t, "no vars here", expandEnv("no vars here"))
}

func TestValidateRequiresResolvedAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	// Default key is an env reference; unresolved it must fail.
	require.Error(t, cfg.Validate())

	cfg.APIKey = "real-key"
	require.NoError(t, cfg.Validate())

	cfg.APIKey = "   "
	require.Error(t, cfg.Validate())
}

func TestValidateFillsSafeDefaults(t *testing.T) {
	cfg := &Config{APIKey: "k"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 10, cfg.MaxUploadMiB)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{APIKey: "k", MaxUploadMiB: 2}
	assert.Equal(t, int64(2*1024*1024), cfg.MaxUploadBytes())
}
