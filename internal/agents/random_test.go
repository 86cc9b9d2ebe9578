package agents

import (
	"testing"

	"github.com/MKhiriev/refgame/models"
)

func testChannel() models.ChannelSpec {
	return models.ChannelSpec{AlphabetSize: 5, MaxMessageLength: 3}
}

func TestRandomSpeaker_MessageShape(t *testing.T) {
	s := NewRandomSpeaker(testChannel(), 1)

	for i := 0; i < 100; i++ {
		msg, err := s.Sample(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msg.Symbols) != 3 {
			t.Fatalf("expected 3 symbols, got %d", len(msg.Symbols))
		}
		for _, symbol := range msg.Symbols {
			if symbol < 0 || symbol >= 5 {
				t.Fatalf("symbol %d outside alphabet", symbol)
			}
		}
	}
}

func TestRandomListener_PickRange(t *testing.T) {
	l := NewRandomListener(1)
	candidates := [][]float64{{1}, {0}, {0}, {0}}

	for i := 0; i < 100; i++ {
		choice, err := l.Sample(models.Message{}, candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if choice < 0 || choice >= 4 {
			t.Fatalf("choice %d out of range", choice)
		}
	}
}

func TestRandomListener_NoCandidates(t *testing.T) {
	l := NewRandomListener(1)
	if _, err := l.Sample(models.Message{}, nil); err == nil {
		t.Fatal("expected error on empty candidate set")
	}
}

func TestRandomPair_ChanceLevelAccuracy(t *testing.T) {
	l := NewRandomListener(99)
	candidates := [][]float64{{1}, {0}, {0}, {0}}

	hits := 0
	rounds := 8000
	for i := 0; i < rounds; i++ {
		choice, _ := l.Infer(models.Message{}, candidates)
		if choice == 0 {
			hits++
		}
	}

	accuracy := float64(hits) / float64(rounds)
	// chance level is 0.25 with 4 candidates
	if accuracy < 0.2 || accuracy > 0.3 {
		t.Fatalf("random listener accuracy %f far from chance 0.25", accuracy)
	}
}

func TestRandomAgents_TrainIsNoOp(t *testing.T) {
	s := NewRandomSpeaker(testChannel(), 1)
	l := NewRandomListener(1)

	if err := s.Train([]Experience{{Reward: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Train([]Experience{{Reward: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
