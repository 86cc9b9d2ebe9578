package service

import (
	"context"

	"github.com/MKhiriev/refgame/internal/trainer"
	"github.com/MKhiriev/refgame/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ExperimentService loads and validates experiment definitions on the
// trainer side.
type ExperimentService interface {
	// Load reads the YAML experiment definition at path. An empty path
	// returns the built-in default experiment.
	Load(ctx context.Context, path string) (models.Experiment, error)
}

// PublisherService pushes finished runs to the tracker.
type PublisherService interface {
	// Publish authenticates against the tracker if needed, uploads the run
	// record, and streams the episode series in batches.
	Publish(ctx context.Context, result *trainer.Result) error
}
