package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("experiment name is required")
	ErrInvalidDatasetKind  = errors.New("invalid dataset kind")
	ErrInvalidAgentsKind   = errors.New("invalid agents kind")
	ErrInvalidAttributes   = errors.New("attributes must be at least 1")
	ErrInvalidValues       = errors.New("values must be at least 2")
	ErrInvalidDistractors  = errors.New("distractors must be at least 1")
	ErrInvalidSetSizes     = errors.New("train and test sizes must be at least 1")
	ErrInvalidGridSize     = errors.New("pixel grid must fit one row per attribute")
	ErrInvalidAlphabet     = errors.New("alphabet size must be at least 2")
	ErrInvalidMessageLen   = errors.New("message length must be at least 1")
	ErrInvalidEpochs       = errors.New("epochs must be at least 1")
	ErrInvalidBatchSize    = errors.New("batch size must be at least 1")
	ErrInvalidHiddenSize   = errors.New("speaker hidden size must be at least 1")
	ErrInvalidLearningRate = errors.New("learning rates must be positive")
)
