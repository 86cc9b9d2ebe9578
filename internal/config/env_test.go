package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Server(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_GRPC_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/refgame")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_ISSUER", "refgame-tracker")
	t.Setenv("APP_TOKEN_DURATION", "1h")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost:5432/refgame", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "refgame-tracker", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseEnv_Trainer(t *testing.T) {
	t.Setenv("EXPERIMENT", "experiments/symbolic.yaml")
	t.Setenv("WATCH_DIR", "experiments")
	t.Setenv("UI", "true")
	t.Setenv("LOCAL_DB_PATH", "runs.db")
	t.Setenv("TRACKER_BASE_URL", "http://localhost:8080")
	t.Setenv("TRACKER_LOGIN", "lab")
	t.Setenv("TRACKER_REQUEST_TIMEOUT", "15s")

	cfg := &TrainerConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "experiments/symbolic.yaml", cfg.ExperimentFile)
	assert.Equal(t, "experiments", cfg.WatchDir)
	assert.True(t, cfg.UI)
	assert.Equal(t, "runs.db", cfg.Local.DBPath)
	assert.Equal(t, "http://localhost:8080", cfg.Tracker.BaseURL)
	assert.Equal(t, "lab", cfg.Tracker.Login)
	assert.Equal(t, 15*time.Second, cfg.Tracker.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}
