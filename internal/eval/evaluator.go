package eval

import (
	"runtime"
	"sync"

	"pixelga/internal/grid"
)

// Fitness counts the cells where individual and target hold the same index
func Fitness(individual, target grid.Grid) int {
	score := 0
	for i, v := range individual.Cells {
		if v == target.Cells[i] {
			score++
		}
	}
	return score
}

// Evaluator scores whole populations against a target
type Evaluator struct {
	workers int
}

// NewEvaluator creates a new evaluator. workers <= 0 uses one worker per CPU.
func NewEvaluator(workers int) *Evaluator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{workers: workers}
}

// Workers returns the size of the worker pool
func (e *Evaluator) Workers() int {
	return e.workers
}

// ScorePopulation returns the fitness of every individual, in population order
func (e *Evaluator) ScorePopulation(individuals []grid.Grid, target grid.Grid) []int {
	scores := make([]int, len(individuals))
	if e.workers == 1 || len(individuals) < 2 {
		for i, ind := range individuals {
			scores[i] = Fitness(ind, target)
		}
		return scores
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)

	for i, ind := range individuals {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ind grid.Grid) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i] = Fitness(ind, target)
		}(i, ind)
	}
	wg.Wait()
	return scores
}
