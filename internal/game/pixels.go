package game

import "github.com/MKhiriev/refgame/models"

// renderPixels draws an object onto a GridSize×GridSize grayscale grid and
// returns it flattened row-major. Each attribute owns a horizontal band of
// the grid; the attribute's value positions a bright 2×2 glyph inside the
// band, with a dimmer halo one cell around it. The rendering is
// deterministic, so identical objects always produce identical grids.
func renderPixels(object []int, spec models.DatasetSpec) []float64 {
	size := spec.GridSize
	grid := make([]float64, size*size)

	bandHeight := size / spec.Attributes

	for attr, value := range object {
		// glyph anchor inside the attribute's band
		row := attr*bandHeight + bandHeight/2
		col := (value*size + size/2) / spec.Values
		if col > size-2 {
			col = size - 2
		}
		if row > size-2 {
			row = size - 2
		}

		for dr := -1; dr <= 2; dr++ {
			for dc := -1; dc <= 2; dc++ {
				r, c := row+dr, col+dc
				if r < 0 || r >= size || c < 0 || c >= size {
					continue
				}
				if dr >= 0 && dr <= 1 && dc >= 0 && dc <= 1 {
					grid[r*size+c] = 1.0
				} else if grid[r*size+c] < 0.3 {
					grid[r*size+c] = 0.3
				}
			}
		}
	}

	return grid
}
