package models

// Sample is a single referential-game instance: the target the speaker
// observes and the candidate set the listener chooses from.
//
// Candidates always contains exactly one copy of Target, at TargetIndex. The
// remaining entries are distractors drawn from the same meaning space.
type Sample struct {
	// Target is the input vector shown to the speaker.
	Target []float64 `json:"target"`

	// Candidates are the vectors shown to the listener, target included,
	// in shuffled order.
	Candidates [][]float64 `json:"candidates"`

	// TargetIndex is the position of Target inside Candidates.
	TargetIndex int `json:"target_index"`
}

// Dataset is an ordered collection of samples plus the spec that produced it.
type Dataset struct {
	Spec    DatasetSpec
	Samples []Sample
}

// Len returns the number of samples in the dataset.
func (d *Dataset) Len() int {
	return len(d.Samples)
}
