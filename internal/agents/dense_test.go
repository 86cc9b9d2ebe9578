package agents

import (
	"errors"
	"testing"

	"github.com/MKhiriev/refgame/models"
)

func oneHot(dim, hot int) []float64 {
	v := make([]float64, dim)
	v[hot] = 1
	return v
}

func TestNewDenseSpeaker_InvalidShapes(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 4, MaxMessageLength: 1}

	if _, err := NewDenseSpeaker(0, 8, ch, 0.1, 1); !errors.Is(err, ErrInvalidPolicyShape) {
		t.Fatalf("expected ErrInvalidPolicyShape, got %v", err)
	}
	if _, err := NewDenseSpeaker(4, 0, ch, 0.1, 1); !errors.Is(err, ErrInvalidPolicyShape) {
		t.Fatalf("expected ErrInvalidPolicyShape, got %v", err)
	}
	bad := models.ChannelSpec{AlphabetSize: 1, MaxMessageLength: 1}
	if _, err := NewDenseSpeaker(4, 8, bad, 0.1, 1); !errors.Is(err, ErrInvalidPolicyShape) {
		t.Fatalf("expected ErrInvalidPolicyShape, got %v", err)
	}
}

func TestDenseSpeaker_MessageShape(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 6, MaxMessageLength: 2}
	s, err := NewDenseSpeaker(4, 8, ch, 0.1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, err := s.Sample(oneHot(4, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msg.Symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(msg.Symbols))
	}
	for _, symbol := range msg.Symbols {
		if symbol < 0 || symbol >= 6 {
			t.Fatalf("symbol %d outside alphabet", symbol)
		}
	}
}

func TestDenseSpeaker_InferDeterministic(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 6, MaxMessageLength: 2}
	s, _ := NewDenseSpeaker(4, 8, ch, 0.1, 1)

	first, err := s.Infer(oneHot(4, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := s.Infer(oneHot(4, 1))
		if !first.Equal(again) {
			t.Fatal("greedy inference must be deterministic")
		}
	}
}

func TestDenseSpeaker_DimensionMismatch(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 6, MaxMessageLength: 2}
	s, _ := NewDenseSpeaker(4, 8, ch, 0.1, 1)

	if _, err := s.Sample(oneHot(5, 0)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestDenseListener_InferRange(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 4, MaxMessageLength: 1}
	l, err := NewDenseListener(4, ch, 0.1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	candidates := [][]float64{oneHot(4, 0), oneHot(4, 1), oneHot(4, 2)}
	choice, err := l.Infer(models.Message{Symbols: []int{2}}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if choice < 0 || choice >= 3 {
		t.Fatalf("choice %d out of range", choice)
	}
}

func TestDenseListener_RejectsForeignSymbols(t *testing.T) {
	ch := models.ChannelSpec{AlphabetSize: 4, MaxMessageLength: 1}
	l, _ := NewDenseListener(4, ch, 0.1, 1)

	_, err := l.Infer(models.Message{Symbols: []int{9}}, [][]float64{oneHot(4, 0)})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

// TestDenseListener_LearnsSymbolMeaning trains the listener against a perfect
// speaker whose single symbol always names the target's hot attribute value.
// After training, greedy inference should beat chance by a wide margin.
func TestDenseListener_LearnsSymbolMeaning(t *testing.T) {
	const dim = 4
	ch := models.ChannelSpec{AlphabetSize: dim, MaxMessageLength: 1}
	l, _ := NewDenseListener(dim, ch, 0.5, 5)

	candidatesFor := func(target int) [][]float64 {
		other := (target + 1) % dim
		return [][]float64{oneHot(dim, target), oneHot(dim, other)}
	}

	for iter := 0; iter < 300; iter++ {
		batch := make([]Experience, 0, 16)
		for i := 0; i < 16; i++ {
			target := (iter + i) % dim
			candidates := candidatesFor(target)
			msg := models.Message{Symbols: []int{target}}

			choice, err := l.Sample(msg, candidates)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			reward := 0.0
			if choice == 0 {
				reward = 1
			}
			batch = append(batch, Experience{
				Candidates: candidates,
				Message:    msg,
				Choice:     choice,
				Reward:     reward,
			})
		}
		if err := l.Train(batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	hits := 0
	rounds := 0
	for target := 0; target < dim; target++ {
		candidates := candidatesFor(target)
		msg := models.Message{Symbols: []int{target}}
		choice, _ := l.Infer(msg, candidates)
		if choice == 0 {
			hits++
		}
		rounds++
	}

	if hits < rounds {
		t.Fatalf("trained listener solved only %d/%d rounds", hits, rounds)
	}
}

// TestDenseSpeaker_LearnsToNameTarget trains the speaker against a perfect
// listener that understands symbol i as "the candidate with hot value i".
func TestDenseSpeaker_LearnsToNameTarget(t *testing.T) {
	const dim = 4
	ch := models.ChannelSpec{AlphabetSize: dim, MaxMessageLength: 1}
	s, _ := NewDenseSpeaker(dim, 8, ch, 0.5, 5)

	for iter := 0; iter < 400; iter++ {
		batch := make([]Experience, 0, 16)
		for i := 0; i < 16; i++ {
			target := (iter + i) % dim
			input := oneHot(dim, target)

			msg, err := s.Sample(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			reward := 0.0
			if msg.Symbols[0] == target {
				reward = 1
			}
			batch = append(batch, Experience{
				Target:  input,
				Message: msg,
				Reward:  reward,
			})
		}
		if err := s.Train(batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	hits := 0
	for target := 0; target < dim; target++ {
		msg, _ := s.Infer(oneHot(dim, target))
		if msg.Symbols[0] == target {
			hits++
		}
	}

	// chance level would be 1 of 4
	if hits < 3 {
		t.Fatalf("trained speaker named only %d/4 targets", hits)
	}
}
