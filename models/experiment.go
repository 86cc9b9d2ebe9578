package models

// DatasetKind selects the input modality used by an experiment.
type DatasetKind string

const (
	// DatasetSymbolic produces one-hot attribute/value vectors.
	DatasetSymbolic DatasetKind = "symbolic"

	// DatasetPixels produces flattened synthetic pixel grids with drawn
	// shapes. Perception stays trivial on purpose: the grids are rendered
	// deterministically from the same attribute space as the symbolic
	// dataset.
	DatasetPixels DatasetKind = "pixels"
)

// AgentsKind selects the speaker/listener pair used by an experiment.
type AgentsKind string

const (
	// AgentsRandom uses the random-baseline pair: the speaker emits uniform
	// random symbols and the listener picks a candidate uniformly.
	AgentsRandom AgentsKind = "random"

	// AgentsDense uses the dense policy pair trained with REINFORCE batch
	// updates.
	AgentsDense AgentsKind = "dense"
)

// Experiment is the full definition of a single referential-game experiment.
// It is what the trainer loads from a YAML file (or builds from defaults),
// validates, snapshots into the run record, and hands to the pipeline.
type Experiment struct {
	// Name identifies the experiment in logs, run records, and the tracker.
	Name string `yaml:"name" json:"name"`

	Dataset  DatasetSpec  `yaml:"dataset" json:"dataset"`
	Agents   AgentsSpec   `yaml:"agents" json:"agents"`
	Channel  ChannelSpec  `yaml:"channel" json:"channel"`
	Training TrainingSpec `yaml:"training" json:"training"`

	// Publish requests upload of the finished run to the tracker.
	Publish bool `yaml:"publish" json:"publish"`
}

// DatasetSpec describes the meaning space and how many samples to draw from it.
type DatasetSpec struct {
	Kind DatasetKind `yaml:"kind" json:"kind"`

	// Attributes is the number of categorical attributes per object.
	Attributes int `yaml:"attributes" json:"attributes"`

	// Values is the number of possible values per attribute.
	Values int `yaml:"values" json:"values"`

	// Distractors is the number of non-target candidates shown to the
	// listener. The listener always chooses among Distractors+1 candidates.
	Distractors int `yaml:"distractors" json:"distractors"`

	// TrainSize and TestSize are the number of samples generated for the
	// training and the held-out evaluation set.
	TrainSize int `yaml:"train_size" json:"train_size"`
	TestSize  int `yaml:"test_size" json:"test_size"`

	// GridSize is the square pixel-grid side length. Only used when
	// Kind == DatasetPixels.
	GridSize int `yaml:"grid_size,omitempty" json:"grid_size,omitempty"`

	// Seed makes dataset generation deterministic.
	Seed int64 `yaml:"seed" json:"seed"`
}

// AgentsSpec describes the agent pair and its learning hyperparameters.
type AgentsSpec struct {
	Kind AgentsKind `yaml:"kind" json:"kind"`

	// SpeakerHidden is the speaker's hidden-layer width.
	SpeakerHidden int `yaml:"speaker_hidden" json:"speaker_hidden"`

	// SpeakerLR and ListenerLR are the REINFORCE step sizes.
	SpeakerLR  float64 `yaml:"speaker_lr" json:"speaker_lr"`
	ListenerLR float64 `yaml:"listener_lr" json:"listener_lr"`
}

// ChannelSpec describes the communication channel between the agents.
type ChannelSpec struct {
	// AlphabetSize is the number of distinct symbols the speaker can emit.
	AlphabetSize int `yaml:"alphabet_size" json:"alphabet_size"`

	// MaxMessageLength is the exact message length: every message carries
	// this many symbols.
	MaxMessageLength int `yaml:"max_message_length" json:"max_message_length"`
}

// TrainingSpec describes the training loop shape.
type TrainingSpec struct {
	Epochs    int `yaml:"epochs" json:"epochs"`
	BatchSize int `yaml:"batch_size" json:"batch_size"`
}

// InputDim returns the dimensionality of the vectors the agents observe.
func (d DatasetSpec) InputDim() int {
	if d.Kind == DatasetPixels {
		return d.GridSize * d.GridSize
	}
	return d.Attributes * d.Values
}

// Candidates returns the size of the listener's choice set.
func (d DatasetSpec) Candidates() int {
	return d.Distractors + 1
}
