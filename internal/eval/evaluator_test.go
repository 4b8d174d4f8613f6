package eval

import (
	"math"
	"math/rand"
	"testing"

	"pixelga/internal/grid"
)

func TestFitnessCountsMatches(t *testing.T) {
	a, _ := grid.ParseRows([]string{"012", "344"})
	b, _ := grid.ParseRows([]string{"013", "341"})
	if got := Fitness(a, b); got != 4 {
		t.Fatalf("Fitness = %d, want 4", got)
	}
}

func TestFitnessSymmetricAndSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		a := grid.Random(6, 4, 5, rng)
		b := grid.Random(6, 4, 5, rng)
		if Fitness(a, b) != Fitness(b, a) {
			t.Fatalf("fitness not symmetric for %v / %v", a.Cells, b.Cells)
		}
		if got := Fitness(a, a); got != a.Size() {
			t.Fatalf("Fitness(a, a) = %d, want %d", got, a.Size())
		}
		if f := Fitness(a, b); f < 0 || f > a.Size() {
			t.Fatalf("fitness %d out of range", f)
		}
	}
}

func TestScorePopulationParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	target := grid.Random(7, 7, 5, rng)
	pop := make([]grid.Grid, 64)
	for i := range pop {
		pop[i] = grid.Random(7, 7, 5, rng)
	}

	serial := NewEvaluator(1).ScorePopulation(pop, target)
	parallel := NewEvaluator(4).ScorePopulation(pop, target)
	for i := range pop {
		if serial[i] != parallel[i] {
			t.Fatalf("index %d: serial %d parallel %d", i, serial[i], parallel[i])
		}
		if serial[i] != Fitness(pop[i], target) {
			t.Fatalf("index %d: score out of order", i)
		}
	}
}

func TestNewEvaluatorDefaultsWorkers(t *testing.T) {
	if NewEvaluator(0).Workers() < 1 {
		t.Fatal("expected at least one worker")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int{2, 5, 1, 5})
	if s.Best != 5 || s.Min != 1 || s.Count != 4 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.Mean-3.25) > 1e-9 {
		t.Fatalf("mean = %f", s.Mean)
	}
	if math.Abs(s.Std-math.Sqrt(3.1875)) > 1e-9 {
		t.Fatalf("std = %f", s.Std)
	}
	if Summarize(nil).Count != 0 {
		t.Fatal("empty summary should count nothing")
	}
}
