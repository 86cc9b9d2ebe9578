package introspect

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/MKhiriev/refgame/models"
)

// TopographicSimilarity measures how well the structure of the meaning space
// is mirrored in the message space: the Spearman rank correlation between
// pairwise meaning distances and pairwise message distances, over all
// unordered pairs of episodes.
//
// The second return reports whether the value is defined. It is false when
// there are fewer than two pairs or when either distance series is constant;
// the similarity is then reported as 0.
func TopographicSimilarity(inputs [][]float64, messages []models.Message) (float64, bool) {
	n := len(inputs)
	if len(messages) < n {
		n = len(messages)
	}
	if n < 3 {
		// fewer than 3 points give at most one pair
		return 0, false
	}

	pairs := n * (n - 1) / 2
	meaningDist := make([]float64, 0, pairs)
	messageDist := make([]float64, 0, pairs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			meaningDist = append(meaningDist, MeaningDistance(inputs[i], inputs[j]))
			messageDist = append(messageDist, MessageDistance(messages[i], messages[j]))
		}
	}

	if constant(meaningDist) || constant(messageDist) {
		return 0, false
	}

	rho := stat.Correlation(ranks(meaningDist), ranks(messageDist), nil)
	if math.IsNaN(rho) {
		return 0, false
	}
	return rho, true
}

// ranks converts values to fractional ranks, averaging ties, which turns a
// Pearson correlation over the result into Spearman's rho.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	out := make([]float64, len(values))
	for lo := 0; lo < len(idx); {
		hi := lo + 1
		for hi < len(idx) && values[idx[hi]] == values[idx[lo]] {
			hi++
		}
		// 1-based ranks averaged across the tie block
		avg := float64(lo+hi+1) / 2
		for k := lo; k < hi; k++ {
			out[idx[k]] = avg
		}
		lo = hi
	}
	return out
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
