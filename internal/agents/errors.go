package agents

import "errors"

var (
	// ErrUnknownAgentsKind indicates an experiment requesting an agent pair
	// this build does not provide.
	ErrUnknownAgentsKind = errors.New("unknown agents kind")

	// ErrInvalidPolicyShape indicates non-positive layer dimensions.
	ErrInvalidPolicyShape = errors.New("invalid policy shape")

	// ErrDimensionMismatch indicates an observation whose length does not
	// match the dimensions the policy was built with.
	ErrDimensionMismatch = errors.New("observation dimension mismatch")

	// ErrNoCandidates indicates an empty candidate set.
	ErrNoCandidates = errors.New("no candidates provided")
)
