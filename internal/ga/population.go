package ga

import (
	"math/rand"

	"pixelga/internal/grid"
)

// Params controls how one generation is bred from the previous one
type Params struct {
	ElitismRate  float64
	MutationRate float64
	Colors       int
}

// Population manages the individuals of one generation
type Population struct {
	Individuals []grid.Grid
	Width       int
	Height      int
}

// NewPopulation creates a new uniformly random population
func NewPopulation(size, width, height, colors int, rng *rand.Rand) *Population {
	p := &Population{
		Individuals: make([]grid.Grid, size),
		Width:       width,
		Height:      height,
	}

	for i := 0; i < size; i++ {
		p.Individuals[i] = grid.Random(width, height, colors, rng)
	}

	return p
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the index and score of the first individual with the highest score
func Best(scores []int) (int, int) {
	if len(scores) == 0 {
		return -1, 0
	}
	best := 0
	for i, s := range scores[1:] {
		if s > scores[best] {
			best = i + 1
		}
	}
	return best, scores[best]
}

// Next breeds the following generation: elites are copied unchanged, the
// rest are children of roulette-selected parents taken in pairs. Scores must
// be in population order. The result always has the same size.
func (p *Population) Next(scores []int, params Params, rng *rand.Rand) *Population {
	n := p.Size()
	next := &Population{
		Individuals: make([]grid.Grid, 0, n+1),
		Width:       p.Width,
		Height:      p.Height,
	}

	// 1. Keep elites
	eliteCount := EliteCount(params.ElitismRate, n)
	for _, i := range EliteIndices(scores, eliteCount) {
		next.Individuals = append(next.Individuals, p.Individuals[i].Clone())
	}

	// 2. Select parents
	parents := RouletteSelect(scores, n-eliteCount, rng)

	// 3. Breed pairs, wrapping the last parent onto the first
	for i := 0; i < len(parents); i += 2 {
		p1 := p.Individuals[parents[i]]
		p2 := p.Individuals[parents[(i+1)%len(parents)]]

		c1 := Crossover(p1, p2, rng)
		c2 := Crossover(p2, p1, rng)

		next.Individuals = append(next.Individuals,
			Mutate(c1, params.MutationRate, params.Colors, rng),
			Mutate(c2, params.MutationRate, params.Colors, rng),
		)
	}

	// 4. Odd parent counts produce one child too many
	next.Individuals = next.Individuals[:n]
	return next
}
