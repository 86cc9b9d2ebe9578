package agents

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// softmax writes the softmax of logits into a fresh slice. The max-shift
// keeps the exponentials finite; a degenerate row (all -Inf or NaN sum)
// falls back to the uniform distribution so a downstream sampler always
// receives a valid distribution.
func softmax(logits []float64) []float64 {
	probs := make([]float64, len(logits))
	max := floats.Max(logits)

	sum := 0.0
	for i, l := range logits {
		probs[i] = math.Exp(l - max)
		sum += probs[i]
	}

	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		uniform := 1.0 / float64(len(probs))
		for i := range probs {
			probs[i] = uniform
		}
		return probs
	}

	floats.Scale(1/sum, probs)
	return probs
}

// sampleIndex draws an index from the categorical distribution probs.
func sampleIndex(rng *rand.Rand, probs []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}
	// floating point slack: the accumulated mass can fall short of 1
	return len(probs) - 1
}

// argmax returns the index of the largest value, lowest index winning ties.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// topIndices returns the indices of the n largest values in descending
// order. Used by the greedy speaker readout, which emits the n most probable
// symbols.
func topIndices(values []float64, n int) []int {
	if n > len(values) {
		n = len(values)
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}

	// selection of the top n is enough; message lengths are tiny
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < len(indices); j++ {
			if values[indices[j]] > values[indices[best]] {
				best = j
			}
		}
		indices[i], indices[best] = indices[best], indices[i]
	}

	return indices[:n]
}

// relu applies max(0, x) in place and returns its argument.
func relu(v []float64) []float64 {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
	return v
}

// xavierScale returns the initialization scale for a layer with the given
// fan-in.
func xavierScale(fanIn int) float64 {
	return 1 / math.Sqrt(float64(fanIn))
}
