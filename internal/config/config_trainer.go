package config

import "time"

// TrainerConfig is the top-level configuration container for the refgame
// trainer binary. Like the tracker config it is merged from environment
// variables followed by command-line flags.
type TrainerConfig struct {
	// ExperimentFile is the path to the YAML experiment definition.
	// Empty means the built-in default experiment is used.
	// Env: EXPERIMENT
	ExperimentFile string `env:"EXPERIMENT"`

	// WatchDir enables watch mode: the trainer watches this directory and
	// runs every experiment YAML file created in it.
	// Env: WATCH_DIR
	WatchDir string `env:"WATCH_DIR"`

	// UI enables the live bubbletea dashboard.
	// Env: UI
	UI bool `env:"UI"`

	// Local holds the local run-store settings.
	Local Local `envPrefix:"LOCAL_"`

	// Tracker holds settings for publishing results to the tracker server.
	Tracker Tracker `envPrefix:"TRACKER_"`
}

// Local holds connection settings for the trainer-local SQLite run store.
type Local struct {
	// DBPath is the SQLite database file. ":memory:" keeps runs in memory.
	// Env: LOCAL_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// Tracker holds the trainer-side settings of the tracker HTTP API.
type Tracker struct {
	// BaseURL is the tracker server base URL (e.g. "http://localhost:8080").
	// Env: TRACKER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Login and Password authenticate the trainer against the tracker when
	// an experiment requests publishing.
	// Env: TRACKER_LOGIN / TRACKER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds a single publish request.
	// Env: TRACKER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HashKey is the optional HMAC key for upload body signatures. Must
	// match the tracker's key when the tracker enforces signatures.
	// Env: TRACKER_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// GetTrainerConfig loads and validates the trainer configuration from
// environment variables and command-line flags (flags win for non-zero
// fields).
func GetTrainerConfig() (*TrainerConfig, error) {
	return newTrainerConfigBuilder().
		withEnv().
		withFlags().
		build()
}
