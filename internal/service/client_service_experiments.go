package service

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/validators"
	"github.com/MKhiriev/refgame/models"
)

// experimentService loads experiment definitions from YAML files and
// validates them before they reach the pipeline.
type experimentService struct {
	validator validators.Validator
	logger    *logger.Logger
}

func NewExperimentService(validator validators.Validator, logger *logger.Logger) ExperimentService {
	return &experimentService{
		validator: validator,
		logger:    logger,
	}
}

// DefaultExperiment is the built-in definition used when no experiment file
// is given: the small symbolic setup with dense agents.
func DefaultExperiment() models.Experiment {
	return models.Experiment{
		Name: "symbolic-default",
		Dataset: models.DatasetSpec{
			Kind:        models.DatasetSymbolic,
			Attributes:  3,
			Values:      4,
			Distractors: 3,
			TrainSize:   1000,
			TestSize:    200,
			Seed:        1,
		},
		Agents: models.AgentsSpec{
			Kind:          models.AgentsDense,
			SpeakerHidden: 64,
			SpeakerLR:     0.1,
			ListenerLR:    0.1,
		},
		Channel: models.ChannelSpec{
			AlphabetSize:     10,
			MaxMessageLength: 2,
		},
		Training: models.TrainingSpec{Epochs: 50, BatchSize: 32},
	}
}

// Load reads, decodes, and validates the experiment definition at path.
// An empty path falls back to [DefaultExperiment].
func (s *experimentService) Load(ctx context.Context, path string) (models.Experiment, error) {
	log := logger.FromContext(ctx)

	var exp models.Experiment
	if path == "" {
		exp = DefaultExperiment()
		log.Info().Str("experiment", exp.Name).Msg("no experiment file given, using default")
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Err(err).Str("path", path).Msg("reading experiment file failed")
			return models.Experiment{}, fmt.Errorf("reading experiment file failed: %w", err)
		}

		if err = yaml.Unmarshal(data, &exp); err != nil {
			log.Err(err).Str("path", path).Msg("decoding experiment file failed")
			return models.Experiment{}, fmt.Errorf("decoding experiment file failed: %w", err)
		}
	}

	if err := s.validator.Validate(ctx, exp); err != nil {
		log.Err(err).Str("experiment", exp.Name).Msg("experiment validation failed")
		return models.Experiment{}, fmt.Errorf("experiment validation failed: %w", err)
	}

	return exp, nil
}
