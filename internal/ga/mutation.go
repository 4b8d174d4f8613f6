package ga

import (
	"math/rand"

	"pixelga/internal/grid"
)

// Mutate returns a copy of g where each cell, with probability rate, is
// redrawn uniformly from [0, colors). A redrawn cell may keep its value.
func Mutate(g grid.Grid, rate float64, colors int, rng *rand.Rand) grid.Grid {
	out := g.Clone()
	for i := range out.Cells {
		if rng.Float64() < rate {
			out.Cells[i] = rng.Intn(colors)
		}
	}
	return out
}
