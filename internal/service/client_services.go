package service

import (
	"github.com/MKhiriev/refgame/internal/adapter"
	"github.com/MKhiriev/refgame/internal/config"
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/validators"
)

// ClientServices bundles the trainer-side services.
type ClientServices struct {
	ExperimentService ExperimentService
	PublisherService  PublisherService
}

func NewClientServices(tracker adapter.TrackerAdapter, cfg config.Tracker, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ExperimentService: NewExperimentService(validators.NewExperimentValidator(), logger),
		PublisherService:  NewPublisherService(tracker, cfg, logger),
	}
}
