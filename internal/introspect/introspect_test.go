package introspect

import (
	"math"
	"testing"

	"github.com/MKhiriev/refgame/models"
)

func TestMessageDistance(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want float64
	}{
		{name: "identical", a: []int{1, 2, 3}, b: []int{1, 2, 3}, want: 0},
		{name: "one substitution", a: []int{1, 2, 3}, b: []int{1, 5, 3}, want: 1},
		{name: "all different", a: []int{1, 2}, b: []int{3, 4}, want: 2},
		{name: "empty vs full", a: nil, b: []int{7, 7, 7}, want: 3},
		{name: "shift by one", a: []int{1, 2, 3, 4}, b: []int{2, 3, 4, 5}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MessageDistance(models.Message{Symbols: tt.a}, models.Message{Symbols: tt.b})
			if got != tt.want {
				t.Errorf("MessageDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMeaningDistance(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{0, 1, 0, 1}
	if got := MeaningDistance(a, b); got != 2 {
		t.Errorf("MeaningDistance = %v, want 2", got)
	}
	if got := MeaningDistance(a, a); got != 0 {
		t.Errorf("MeaningDistance of identical vectors = %v, want 0", got)
	}
}

func TestTopographicSimilarityPerfect(t *testing.T) {
	// messages copy the inputs symbol for symbol, so distance orders match
	inputs := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
	}
	messages := []models.Message{
		{Symbols: []int{0, 9}},
		{Symbols: []int{1, 9}},
		{Symbols: []int{2, 9}},
		{Symbols: []int{0, 1}},
	}

	rho, ok := TopographicSimilarity(inputs, messages)
	if !ok {
		t.Fatal("expected topographic similarity to be defined")
	}
	if rho <= 0 {
		t.Errorf("rho = %v, want positive for structure-preserving mapping", rho)
	}
}

func TestTopographicSimilarityDegenerate(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		inputs := [][]float64{{1, 0}, {0, 1}}
		messages := []models.Message{{Symbols: []int{1}}, {Symbols: []int{2}}}
		rho, ok := TopographicSimilarity(inputs, messages)
		if ok || rho != 0 {
			t.Errorf("got (%v, %v), want (0, false)", rho, ok)
		}
	})

	t.Run("constant messages", func(t *testing.T) {
		inputs := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
		messages := make([]models.Message, 4)
		for i := range messages {
			messages[i] = models.Message{Symbols: []int{5, 5}}
		}
		rho, ok := TopographicSimilarity(inputs, messages)
		if ok || rho != 0 {
			t.Errorf("got (%v, %v), want (0, false)", rho, ok)
		}
	})
}

func TestRanksAveragesTies(t *testing.T) {
	got := ranks([]float64{10, 20, 20, 30})
	want := []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("ranks = %v, want %v", got, want)
		}
	}
}

func TestBuildLexicon(t *testing.T) {
	messages := []models.Message{
		{Symbols: []int{1, 2}},
		{Symbols: []int{1, 2}},
		{Symbols: []int{3, 4}},
		{Symbols: []int{1, 2}},
		{Symbols: []int{0, 0}},
	}

	entries := BuildLexicon(messages)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "1#2" || entries[0].Count != 3 {
		t.Errorf("top entry = %+v, want 1#2 x3", entries[0])
	}
	if entries[1].Message != "0#0" || entries[2].Message != "3#4" {
		t.Errorf("tie order = %q, %q, want 0#0 then 3#4", entries[1].Message, entries[2].Message)
	}
}
