package models

import "time"

// Phase distinguishes training rounds from evaluation rounds in stats series.
type Phase string

const (
	PhaseTraining Phase = "training"
	PhaseTesting  Phase = "testing"
)

// Episode is the record of one played round. The trainer accumulates one
// series of these per phase; the tracker stores them per run.
type Episode struct {
	// ID is the server-assigned identifier. Zero until persisted.
	ID int64 `json:"-"`

	// RunID ties the episode to its run.
	RunID string `json:"run_id,omitempty"`

	Phase Phase `json:"phase"`

	// Epoch and Batch locate the episode inside the training loop.
	// Both are zero during evaluation.
	Epoch int `json:"epoch"`
	Batch int `json:"batch"`

	// Input is the target vector the speaker observed.
	Input []float64 `json:"input"`

	// Message is the compact form of the emitted message (see Message.String).
	Message string `json:"message"`

	// ChosenIndex is the candidate the listener picked.
	ChosenIndex int `json:"chosen_index"`

	// Reward is 1 when the listener picked the target, 0 otherwise.
	Reward int `json:"reward"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}
