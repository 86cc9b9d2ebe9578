package tui

import "strings"

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as a block-character strip. Rewards live in
// [0, 1], so the scale is fixed rather than derived from the data: a flat
// random baseline should look flat, not noisy.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width < 1 {
		return ""
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(sparkRunes)-1))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
