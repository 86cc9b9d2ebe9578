package introspect

import "github.com/MKhiriev/refgame/models"

// MeaningDistance is the L1 distance between two input vectors. On one-hot
// attribute encodings this is twice the number of differing attributes, so
// it orders meaning pairs exactly like attribute Hamming distance.
func MeaningDistance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	d := 0.0
	for i := 0; i < n; i++ {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		d += diff
	}
	return d
}

// MessageDistance is the Levenshtein edit distance between two messages'
// symbol sequences.
//
// Ecosystem edit-distance packages operate on strings; messages here are
// symbol index slices, and converting through runes would corrupt alphabets
// larger than the rune mapping, so the classic two-row DP is implemented
// directly.
func MessageDistance(a, b models.Message) float64 {
	x, y := a.Symbols, b.Symbols
	if len(x) == 0 {
		return float64(len(y))
	}
	if len(y) == 0 {
		return float64(len(x))
	}

	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(x); i++ {
		curr[0] = i
		for j := 1; j <= len(y); j++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}

			insert := curr[j-1] + 1
			remove := prev[j] + 1
			replace := prev[j-1] + cost

			min := insert
			if remove < min {
				min = remove
			}
			if replace < min {
				min = replace
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return float64(prev[len(y)])
}
