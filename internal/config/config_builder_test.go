package config

import (
	"encoding/json"
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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:         "secret",
			PasswordHashCost:     10,
			TagAllocationRetries: 5,
			ReviewPageSize:       10,
		},
		Storage: Storage{
			DB:    DB{DSN: "sqlite://matjip.db"},
			Files: Files{IconDir: "/tmp/icons"},
		},
		Server: Server{
			HTTPAddress:   "localhost:8080",
			MaxUploadSize: 1024,
		},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources fails
// validation because the sign key is missing.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_SourcePriority verifies flags > env > json > defaults.
func TestBuild_SourcePriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		App:    App{TokenSignKey: "from-json", TokenIssuer: "json-issuer"},
		Server: Server{HTTPAddress: "127.0.0.1:7000"},
	}
	b.env = &StructuredConfig{
		App:     App{TokenSignKey: "from-env"},
		Storage: Storage{DB: DB{DSN: "sqlite://env.db"}},
	}
	b.flags = &StructuredConfig{
		App: App{TokenSignKey: "from-flags"},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-flags", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sqlite://env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)

	// untouched fields fall back to defaults
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, uint64(5), cfg.App.TagAllocationRetries)
	assert.Equal(t, uint64(10), cfg.App.ReviewPageSize)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "./data/icons", cfg.Storage.Files.IconDir)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.NotNil(t, b.defaults)

	assert.Equal(t, "go-matjip", b.defaults.App.TokenIssuer)
	assert.Equal(t, 10, b.defaults.App.PasswordHashCost)
	assert.Equal(t, "localhost:8080", b.defaults.Server.HTTPAddress)
	assert.Equal(t, int64(5<<20), b.defaults.Server.MaxUploadSize)
	assert.Empty(t, b.defaults.App.TokenSignKey)
	assert.Empty(t, b.defaults.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-secret",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env-secret", b.env.App.TokenSignKey)
}

func TestWithEnv_SetsError_OnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_REVIEW_PAGE_SIZE": "many",
	})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-token-sign-key", "flag-secret"}

	b.withFlags()
	require.NoError(t, b.err)
	assert.Equal(t, "flag-secret", b.flags.App.TokenSignKey)
}

func TestWithFlags_SetsError_OnInvalidArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-a", "nowhere"}

	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}

	b.withJSON()
	require.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-secret"},
	})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: path}

	b.withJSON()
	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "json-secret", b.json.App.TokenSignKey)
}

func TestWithJSON_FlagPathWinsOverEnv(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "env-file"},
	})
	flagPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "flag-file"},
	})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}

	b.withJSON()
	require.NoError(t, b.err)
	assert.Equal(t, "flag-file", b.json.App.TokenSignKey)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: "/definitely/not/here.json"}

	b.withJSON()
	assert.Error(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_DoesNothing_WhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.flags = &StructuredConfig{JSONFilePath: path}

	b.withJSON()
	assert.Nil(t, b.json)
}
