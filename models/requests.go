package models

// EpisodeBatchUpload is the payload for pushing a chunk of episodes to the
// tracker. The trainer splits long series into batches so a single request
// stays small.
type EpisodeBatchUpload struct {
	Episodes []Episode `json:"episodes"`
}

// RunListItem is the compact run representation returned by the list endpoint.
type RunListItem struct {
	RunID      string     `json:"run_id"`
	Name       string     `json:"name"`
	Status     RunStatus  `json:"status"`
	Summary    RunSummary `json:"summary"`
	StartedAt  string     `json:"started_at"`
	FinishedAt string     `json:"finished_at,omitempty"`
}

// MetricsReport is the aggregated-metrics response for a run. Besides the
// stored summary it carries counts recomputed from the episode table, so a
// partially uploaded run is visible as such.
type MetricsReport struct {
	RunID   string     `json:"run_id"`
	Summary RunSummary `json:"summary"`

	// StoredTrainingEpisodes and StoredTestingEpisodes are the episode rows
	// the tracker actually holds for the run.
	StoredTrainingEpisodes int `json:"stored_training_episodes"`
	StoredTestingEpisodes  int `json:"stored_testing_episodes"`

	// MeanStoredReward is the mean reward over all stored episodes.
	MeanStoredReward float64 `json:"mean_stored_reward"`
}

// BuildInfo is returned by the version endpoint.
type BuildInfo struct {
	Version string `json:"version"`
}
