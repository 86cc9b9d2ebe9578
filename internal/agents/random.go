package agents

import (
	"math/rand"
	"sync"

	"github.com/MKhiriev/refgame/models"
)

// RandomSpeaker emits uniform random symbols. It is the baseline from the
// first project milestone: trained nothing, learned nothing, useful as the
// chance-level reference for every metric.
type RandomSpeaker struct {
	channel models.ChannelSpec

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSpeaker constructs a RandomSpeaker with its own seeded PRNG.
func NewRandomSpeaker(channel models.ChannelSpec, seed int64) *RandomSpeaker {
	return &RandomSpeaker{
		channel: channel,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Sample implements [Speaker].
func (s *RandomSpeaker) Sample(target []float64) (models.Message, error) {
	return s.emit(), nil
}

// Infer implements [Speaker]. The baseline has no greedy mode: inference is
// as random as sampling.
func (s *RandomSpeaker) Infer(target []float64) (models.Message, error) {
	return s.emit(), nil
}

// Train implements [Speaker] as a no-op.
func (s *RandomSpeaker) Train(batch []Experience) error {
	return nil
}

func (s *RandomSpeaker) emit() models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbols := make([]int, s.channel.MaxMessageLength)
	for i := range symbols {
		symbols[i] = s.rng.Intn(s.channel.AlphabetSize)
	}
	return models.Message{Symbols: symbols}
}

// RandomListener ignores the message and picks a candidate uniformly.
type RandomListener struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomListener constructs a RandomListener with its own seeded PRNG.
func NewRandomListener(seed int64) *RandomListener {
	return &RandomListener{
		rng: rand.New(rand.NewSource(seed + 1)),
	}
}

// Sample implements [Listener].
func (l *RandomListener) Sample(message models.Message, candidates [][]float64) (int, error) {
	return l.pick(candidates)
}

// Infer implements [Listener].
func (l *RandomListener) Infer(message models.Message, candidates [][]float64) (int, error) {
	return l.pick(candidates)
}

// Train implements [Listener] as a no-op.
func (l *RandomListener) Train(batch []Experience) error {
	return nil
}

func (l *RandomListener) pick(candidates [][]float64) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(len(candidates)), nil
}
