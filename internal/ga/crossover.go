package ga

import (
	"math/rand"

	"pixelga/internal/grid"
)

// Crossover performs uniform crossover: every cell independently comes from
// a or b with equal probability. Neither parent is modified.
func Crossover(a, b grid.Grid, rng *rand.Rand) grid.Grid {
	child := grid.New(a.Width, a.Height)
	for i := range child.Cells {
		if rng.Float64() < 0.5 {
			child.Cells[i] = a.Cells[i]
		} else {
			child.Cells[i] = b.Cells[i]
		}
	}
	return child
}
