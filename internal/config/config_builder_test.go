package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = flag.NewFlagSet("test", flag.ContinueOnError)
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Same(t, flag.CommandLine, b.flagSet)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_LaterConfigOverridesEarlier(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{OTPTTL: time.Minute, LogLevel: "debug"}},
		&StructuredConfig{App: App{OTPTTL: 2 * time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.App.OTPTTL)
	assert.Equal(t, "debug", cfg.App.LogLevel, "zero values must not erase earlier ones")
}

// ── pipeline ──────────────────────────────────────────────────────────────────

func TestPipeline_DefaultsOnly(t *testing.T) {
	cfg, err := testBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "defisensei", cfg.App.TokenIssuer)
	assert.Equal(t, 300*time.Second, cfg.App.OTPTTL)
	assert.Equal(t, VerifyOTPStrict, cfg.App.VerifyOTPMode)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://newsapi.org/v2", cfg.Market.NewsAPIURL)
	assert.Equal(t, 587, cfg.Mailer.Port)
}

func TestPipeline_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_OTP_TTL", "90s")
	t.Setenv("APP_VERIFY_OTP_MODE", VerifyOTPLegacy)

	cfg, err := testBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.App.OTPTTL)
	assert.Equal(t, VerifyOTPLegacy, cfg.App.VerifyOTPMode)
	assert.Equal(t, "defisensei", cfg.App.TokenIssuer)
}

func TestPipeline_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "from-env.db")

	cfg, err := testBuilder("-d", "from-flag.db").withDefaults().withEnv().withFlags().build()
	require.NoError(t, err)

	assert.Equal(t, "from-flag.db", cfg.Storage.DB.DSN)
}

func TestPipeline_JSONOverridesFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json-issuer", "otp_ttl": "2m"},
	})

	cfg, err := testBuilder("-token-issuer", "flag-issuer", "-c", path).
		withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Minute, cfg.App.OTPTTL)
}

func TestPipeline_JSONPathFromEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "0.0.0.0:9090"},
	})
	t.Setenv("CONFIG", path)

	cfg, err := testBuilder().withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
}

func TestPipeline_MissingJSONFileFails(t *testing.T) {
	_, err := testBuilder("-c", "/nonexistent/config.json").
		withDefaults().withFlags().withJSON().build()
	require.Error(t, err)
}

func TestPipeline_BadFlagFails(t *testing.T) {
	_, err := testBuilder("-no-such-flag").withDefaults().withFlags().build()
	require.Error(t, err)
}
