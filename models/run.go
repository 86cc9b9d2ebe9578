// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RunStatus is the lifecycle state of a run. Transitions only move forward:
// pending → running → finished | failed.
type RunStatus string

const (
	RunPending  RunStatus = "pending"
	RunRunning  RunStatus = "running"
	RunFinished RunStatus = "finished"
	RunFailed   RunStatus = "failed"
)

// Run is one executed (or executing) experiment. The trainer creates the run
// locally, drives it through its lifecycle, and optionally uploads the
// finished record to the tracker, where it is owned by the uploading user.
type Run struct {
	// RunID is a client-generated UUID, stable across local store and tracker.
	RunID string `json:"run_id"`

	// UserID is the tracker-side owner. Unused in the local store.
	UserID int64 `json:"-"`

	// Name is the experiment name the run was started from.
	Name string `json:"name"`

	Status RunStatus `json:"status"`

	// Experiment is the full config snapshot the run was executed with.
	Experiment Experiment `json:"experiment"`

	// Summary holds aggregate results. Zero value until the run finishes.
	Summary RunSummary `json:"summary"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// RunSummary aggregates the outcome of a finished run.
type RunSummary struct {
	// TrainingEpisodes and TestingEpisodes count the recorded rounds.
	TrainingEpisodes int `json:"training_episodes"`
	TestingEpisodes  int `json:"testing_episodes"`

	// TrainingReward is the mean reward over all training rounds.
	TrainingReward float64 `json:"training_reward"`

	// TestingAccuracy is the mean reward over the evaluation pass, i.e. the
	// share of rounds where the listener identified the target.
	TestingAccuracy float64 `json:"testing_accuracy"`

	// TopographicSimilarity is the rank correlation between meaning-space
	// and message-space distances on the evaluation set.
	TopographicSimilarity float64 `json:"topographic_similarity"`

	// TopographicDefined is false when too few distinct pairs existed to
	// compute the correlation.
	TopographicDefined bool `json:"topographic_defined"`
}
