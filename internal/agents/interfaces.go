package agents

import "github.com/MKhiriev/refgame/models"

// Experience is one played round from the perspective of the learners. The
// trainer collects a batch of these between policy updates, so policies are
// frozen for the lifetime of a batch and can recompute their forward pass at
// training time.
type Experience struct {
	// Target is the vector the speaker observed.
	Target []float64

	// Candidates is the listener's (shuffled) choice set.
	Candidates [][]float64

	// Message is what the speaker emitted.
	Message models.Message

	// Choice is the candidate index the listener picked.
	Choice int

	// Reward is the round payoff, shared by both agents.
	Reward float64
}

// Speaker maps a target observation to a message.
//
// Sample draws stochastically from the policy and is used during training.
// Infer is the greedy readout used during evaluation; implementations must
// make Infer safe for concurrent use, as the evaluation pass fans rounds out
// over a worker pool.
type Speaker interface {
	Sample(target []float64) (models.Message, error)
	Infer(target []float64) (models.Message, error)
	Train(batch []Experience) error
}

// Listener maps a message plus a candidate set to a choice.
//
// The same Sample/Infer split and concurrency contract as [Speaker] applies.
type Listener interface {
	Sample(message models.Message, candidates [][]float64) (int, error)
	Infer(message models.Message, candidates [][]float64) (int, error)
	Train(batch []Experience) error
}

// Pair bundles the two policies of one experiment.
type Pair struct {
	Speaker  Speaker
	Listener Listener
}

// NewPair builds the agent pair requested by the experiment.
func NewPair(exp models.Experiment) (Pair, error) {
	switch exp.Agents.Kind {
	case models.AgentsRandom:
		return Pair{
			Speaker:  NewRandomSpeaker(exp.Channel, exp.Dataset.Seed),
			Listener: NewRandomListener(exp.Dataset.Seed),
		}, nil
	case models.AgentsDense:
		speaker, err := NewDenseSpeaker(exp.Dataset.InputDim(), exp.Agents.SpeakerHidden, exp.Channel, exp.Agents.SpeakerLR, exp.Dataset.Seed)
		if err != nil {
			return Pair{}, err
		}
		listener, err := NewDenseListener(exp.Dataset.InputDim(), exp.Channel, exp.Agents.ListenerLR, exp.Dataset.Seed)
		if err != nil {
			return Pair{}, err
		}
		return Pair{Speaker: speaker, Listener: listener}, nil
	default:
		return Pair{}, ErrUnknownAgentsKind
	}
}
