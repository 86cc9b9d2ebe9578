package game

import (
	"testing"

	"github.com/MKhiriev/refgame/models"
)

func symbolicSpec() models.DatasetSpec {
	return models.DatasetSpec{
		Kind:        models.DatasetSymbolic,
		Attributes:  3,
		Values:      4,
		Distractors: 2,
		Seed:        42,
	}
}

func TestGenerate_Shape(t *testing.T) {
	g, err := NewGenerator(symbolicSpec(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, err := g.Generate(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 50 {
		t.Fatalf("expected 50 samples, got %d", ds.Len())
	}

	for i, s := range ds.Samples {
		if len(s.Candidates) != 3 {
			t.Fatalf("sample %d: expected 3 candidates, got %d", i, len(s.Candidates))
		}
		if s.TargetIndex < 0 || s.TargetIndex >= len(s.Candidates) {
			t.Fatalf("sample %d: target index %d out of range", i, s.TargetIndex)
		}
		if len(s.Target) != 12 {
			t.Fatalf("sample %d: expected input dim 12, got %d", i, len(s.Target))
		}
	}
}

func TestGenerate_TargetIsAmongCandidates(t *testing.T) {
	g, err := NewGenerator(symbolicSpec(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, _ := g.Generate(100)
	for i, s := range ds.Samples {
		candidate := s.Candidates[s.TargetIndex]
		for j := range s.Target {
			if s.Target[j] != candidate[j] {
				t.Fatalf("sample %d: candidate at target index differs from target", i)
			}
		}
	}
}

func TestGenerate_OneHotRows(t *testing.T) {
	spec := symbolicSpec()
	g, err := NewGenerator(spec, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, _ := g.Generate(30)
	for _, s := range ds.Samples {
		for _, c := range s.Candidates {
			// each attribute block must contain exactly one hot value
			for attr := 0; attr < spec.Attributes; attr++ {
				sum := 0.0
				for v := 0; v < spec.Values; v++ {
					sum += c[attr*spec.Values+v]
				}
				if sum != 1 {
					t.Fatalf("attribute block %d sums to %f, want 1", attr, sum)
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g1, _ := NewGenerator(symbolicSpec(), 0)
	g2, _ := NewGenerator(symbolicSpec(), 0)

	ds1, _ := g1.Generate(20)
	ds2, _ := g2.Generate(20)

	for i := range ds1.Samples {
		if ds1.Samples[i].TargetIndex != ds2.Samples[i].TargetIndex {
			t.Fatalf("sample %d: target index differs between identical generators", i)
		}
		for j := range ds1.Samples[i].Target {
			if ds1.Samples[i].Target[j] != ds2.Samples[i].Target[j] {
				t.Fatalf("sample %d: target vector differs between identical generators", i)
			}
		}
	}
}

func TestGenerate_SeedOffsetSeparatesTrainAndTest(t *testing.T) {
	train, _ := NewGenerator(symbolicSpec(), 0)
	test, _ := NewGenerator(symbolicSpec(), 1)

	dsTrain, _ := train.Generate(20)
	dsTest, _ := test.Generate(20)

	same := true
	for i := range dsTrain.Samples {
		for j := range dsTrain.Samples[i].Target {
			if dsTrain.Samples[i].Target[j] != dsTest.Samples[i].Target[j] {
				same = false
			}
		}
	}
	if same {
		t.Fatal("train and test streams produced identical targets")
	}
}

func TestGenerate_PixelGrids(t *testing.T) {
	spec := symbolicSpec()
	spec.Kind = models.DatasetPixels
	spec.GridSize = 12

	g, err := NewGenerator(spec, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds, _ := g.Generate(10)
	for _, s := range ds.Samples {
		if len(s.Target) != 144 {
			t.Fatalf("expected flattened 12x12 grid, got %d values", len(s.Target))
		}
		lit := 0
		for _, p := range s.Target {
			if p < 0 || p > 1 {
				t.Fatalf("pixel intensity %f out of [0,1]", p)
			}
			if p == 1 {
				lit++
			}
		}
		// one 2x2 glyph per attribute
		if lit < spec.Attributes {
			t.Fatalf("expected at least %d fully lit pixels, got %d", spec.Attributes, lit)
		}
	}
}

func TestNewGenerator_InvalidSpecs(t *testing.T) {
	bad := []models.DatasetSpec{
		{Kind: models.DatasetSymbolic, Attributes: 0, Values: 4, Distractors: 2},
		{Kind: models.DatasetSymbolic, Attributes: 3, Values: 1, Distractors: 2},
		{Kind: models.DatasetSymbolic, Attributes: 3, Values: 4, Distractors: 0},
		{Kind: models.DatasetPixels, Attributes: 5, Values: 4, Distractors: 2, GridSize: 3},
	}
	for i, spec := range bad {
		if _, err := NewGenerator(spec, 0); err == nil {
			t.Fatalf("spec %d: expected error, got nil", i)
		}
	}
}

func TestReward(t *testing.T) {
	if Reward(2, 2) != 1 {
		t.Fatal("expected reward 1 on match")
	}
	if Reward(0, 2) != 0 {
		t.Fatal("expected reward 0 on mismatch")
	}
}
