package game

import (
	"fmt"
	"math/rand"

	"github.com/MKhiriev/refgame/models"
)

// maxDistractorRetries bounds resampling when a drawn distractor collides
// with the target object. With any reasonable meaning space collisions are
// rare; hitting the bound repeatedly means the space is too small to fill
// the candidate set and the duplicate is kept.
const maxDistractorRetries = 16

// Generator produces referential-game datasets from a [models.DatasetSpec].
// Generation is fully deterministic for a given spec: the generator owns a
// private PRNG seeded from the spec.
type Generator struct {
	spec models.DatasetSpec
	rng  *rand.Rand
}

// NewGenerator constructs a Generator for the given spec, seeding the
// internal PRNG with spec.Seed offset by seedOffset. Train and test sets are
// produced from the same spec with different offsets so they never share a
// random stream.
func NewGenerator(spec models.DatasetSpec, seedOffset int64) (*Generator, error) {
	if err := checkSpec(spec); err != nil {
		return nil, err
	}

	return &Generator{
		spec: spec,
		rng:  rand.New(rand.NewSource(spec.Seed + seedOffset)),
	}, nil
}

func checkSpec(spec models.DatasetSpec) error {
	if spec.Attributes < 1 || spec.Values < 2 {
		return fmt.Errorf("%w: need at least 1 attribute and 2 values", ErrInvalidDatasetSpec)
	}
	if spec.Distractors < 1 {
		return fmt.Errorf("%w: need at least 1 distractor", ErrInvalidDatasetSpec)
	}
	if spec.Kind == models.DatasetPixels && spec.GridSize < spec.Attributes {
		return fmt.Errorf("%w: pixel grid must have at least one row per attribute", ErrInvalidDatasetSpec)
	}
	return nil
}

// Generate draws n samples. Every sample has exactly one target among
// spec.Distractors+1 shuffled candidates.
func (g *Generator) Generate(n int) (*models.Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: dataset size %d", ErrInvalidDatasetSpec, n)
	}

	samples := make([]models.Sample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, g.sample())
	}

	return &models.Dataset{Spec: g.spec, Samples: samples}, nil
}

// sample draws a target object, fills the candidate set with distinct
// distractors, and shuffles the set while tracking the target position.
func (g *Generator) sample() models.Sample {
	target := g.object()

	objects := make([][]int, 0, g.spec.Candidates())
	objects = append(objects, target)
	for len(objects) < g.spec.Candidates() {
		d := g.object()
		for retry := 0; sameObject(d, target) && retry < maxDistractorRetries; retry++ {
			d = g.object()
		}
		objects = append(objects, d)
	}

	targetIndex := 0
	g.rng.Shuffle(len(objects), func(i, j int) {
		objects[i], objects[j] = objects[j], objects[i]
		switch targetIndex {
		case i:
			targetIndex = j
		case j:
			targetIndex = i
		}
	})

	candidates := make([][]float64, len(objects))
	for i, o := range objects {
		candidates[i] = g.encode(o)
	}

	return models.Sample{
		Target:      candidates[targetIndex],
		Candidates:  candidates,
		TargetIndex: targetIndex,
	}
}

// object draws one attribute-value assignment.
func (g *Generator) object() []int {
	values := make([]int, g.spec.Attributes)
	for i := range values {
		values[i] = g.rng.Intn(g.spec.Values)
	}
	return values
}

// encode renders an object in the spec's input modality.
func (g *Generator) encode(object []int) []float64 {
	if g.spec.Kind == models.DatasetPixels {
		return renderPixels(object, g.spec)
	}
	return encodeOneHot(object, g.spec)
}

// encodeOneHot concatenates one one-hot block per attribute.
func encodeOneHot(object []int, spec models.DatasetSpec) []float64 {
	vec := make([]float64, spec.Attributes*spec.Values)
	for attr, value := range object {
		vec[attr*spec.Values+value] = 1
	}
	return vec
}

func sameObject(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
