package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestParseFlags_AllValues(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{
		"-a", "localhost:8080",
		"-grpc-address", "localhost:9090",
		"-d", "postgres://localhost:5432/refgame",
		"-token-sign-key", "secret",
		"-token-issuer", "refgame-tracker",
		"-token-duration", "2h",
		"-request-timeout", "45s",
		"-c", "config.json",
	})

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://localhost:5432/refgame", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "refgame-tracker", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "config.json", cfg.JSONFilePath)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), nil)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseTrainerFlags_AllValues(t *testing.T) {
	cfg := parseTrainerFlags(newTestFlagSet(), []string{
		"-experiment", "experiments/pixels.yaml",
		"-watch", "queue",
		"-tui",
		"-local-db", "runs.db",
		"-tracker-url", "http://localhost:8080",
		"-tracker-login", "lab",
		"-tracker-password", "pw",
		"-tracker-timeout", "10s",
	})

	assert.Equal(t, "experiments/pixels.yaml", cfg.ExperimentFile)
	assert.Equal(t, "queue", cfg.WatchDir)
	assert.True(t, cfg.UI)
	assert.Equal(t, "runs.db", cfg.Local.DBPath)
	assert.Equal(t, "http://localhost:8080", cfg.Tracker.BaseURL)
	assert.Equal(t, "lab", cfg.Tracker.Login)
	assert.Equal(t, "pw", cfg.Tracker.Password)
	assert.Equal(t, 10*time.Second, cfg.Tracker.RequestTimeout)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
