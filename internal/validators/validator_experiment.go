package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/refgame/models"
)

// Field name constants used to specify which sections should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of the experiment definition (field-level scoping).
const (
	FieldDataset  = "dataset"
	FieldAgents   = "agents"
	FieldChannel  = "channel"
	FieldTraining = "training"
)

var allowedDatasetKinds = []models.DatasetKind{
	models.DatasetSymbolic,
	models.DatasetPixels,
}

var allowedAgentsKinds = []models.AgentsKind{
	models.AgentsRandom,
	models.AgentsDense,
}

type ExperimentValidator struct {
}

func NewExperimentValidator() Validator {
	return &ExperimentValidator{}
}

func (v *ExperimentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Experiment:
		return v.validateExperiment(ctx, value, fields...)
	case *models.Experiment:
		return v.validateExperiment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExperimentValidator) validateExperiment(ctx context.Context, exp models.Experiment, fields ...string) error {
	if len(fields) == 0 {
		if exp.Name == "" {
			return ErrEmptyName
		}
		fields = []string{FieldDataset, FieldAgents, FieldChannel, FieldTraining}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldDataset:
			err = v.validateDataset(exp.Dataset)
		case FieldAgents:
			err = v.validateAgents(exp.Agents)
		case FieldChannel:
			err = v.validateChannel(exp.Channel)
		case FieldTraining:
			err = v.validateTraining(exp.Training)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ExperimentValidator) validateDataset(spec models.DatasetSpec) error {
	if !isValidDatasetKind(spec.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidDatasetKind, spec.Kind)
	}
	if spec.Attributes < 1 {
		return ErrInvalidAttributes
	}
	if spec.Values < 2 {
		return ErrInvalidValues
	}
	if spec.Distractors < 1 {
		return ErrInvalidDistractors
	}
	if spec.TrainSize < 1 || spec.TestSize < 1 {
		return ErrInvalidSetSizes
	}
	if spec.Kind == models.DatasetPixels && spec.GridSize < spec.Attributes {
		return ErrInvalidGridSize
	}
	return nil
}

func (v *ExperimentValidator) validateAgents(spec models.AgentsSpec) error {
	if !isValidAgentsKind(spec.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidAgentsKind, spec.Kind)
	}
	if spec.Kind == models.AgentsDense {
		if spec.SpeakerHidden < 1 {
			return ErrInvalidHiddenSize
		}
		if spec.SpeakerLR <= 0 || spec.ListenerLR <= 0 {
			return ErrInvalidLearningRate
		}
	}
	return nil
}

func (v *ExperimentValidator) validateChannel(spec models.ChannelSpec) error {
	if spec.AlphabetSize < 2 {
		return ErrInvalidAlphabet
	}
	if spec.MaxMessageLength < 1 {
		return ErrInvalidMessageLen
	}
	return nil
}

func (v *ExperimentValidator) validateTraining(spec models.TrainingSpec) error {
	if spec.Epochs < 1 {
		return ErrInvalidEpochs
	}
	if spec.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	return nil
}

func isValidDatasetKind(k models.DatasetKind) bool {
	for _, allowed := range allowedDatasetKinds {
		if k == allowed {
			return true
		}
	}
	return false
}

func isValidAgentsKind(k models.AgentsKind) bool {
	for _, allowed := range allowedAgentsKinds {
		if k == allowed {
			return true
		}
	}
	return false
}
