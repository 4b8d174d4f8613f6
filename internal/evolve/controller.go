// Package evolve drives the generation loop of the grid-replicating genetic
// algorithm. The Controller never schedules itself; hosts call Step once per
// tick and render the Update it returns.
package evolve

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"pixelga/internal/config"
	"pixelga/internal/eval"
	"pixelga/internal/ga"
	"pixelga/internal/grid"
)

// State is the lifecycle state of a Controller
type State int

const (
	Idle State = iota
	Running
	Converged
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// RunState is the bookkeeping of the current run
type RunState struct {
	State        State
	Generation   int
	Best         grid.Grid // zero until some individual scores above 0
	BestScore    int
	MutationRate float64
	Stagnant     int // generations since BestScore last improved
}

// Update is what one Step reports to the host
type Update struct {
	Generation   int       `json:"generation"`
	BestScore    int       `json:"best_score"`
	Best         grid.Grid `json:"best"`
	Current      grid.Grid `json:"current"` // best individual of this generation
	CurrentScore int       `json:"current_score"`
	MeanScore    float64   `json:"mean_score"`
	MutationRate float64   `json:"mutation_rate"`
	Size         int       `json:"size"` // score of a perfect match
	Converged    bool      `json:"converged"`
}

// Observer receives every Update as soon as a generation has been scored
type Observer func(Update)

// Controller owns the population, target and run state of one evolution
type Controller struct {
	cfg    config.GAConfig
	colors int
	rng    *rand.Rand

	evaluator *eval.Evaluator
	logger    *slog.Logger
	observers []Observer

	target grid.Grid
	pop    *ga.Population
	run    RunState
}

// Option configures a Controller
type Option func(*Controller)

// WithEvaluator sets the evaluator used to score generations
func WithEvaluator(e *eval.Evaluator) Option {
	return func(c *Controller) { c.evaluator = e }
}

// WithLogger sets the logger for run lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithObserver registers an observer for every Update
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// NewController creates an idle controller. rng is the only random source
// used for seeding, selection, crossover and mutation.
func NewController(cfg config.GAConfig, colors int, rng *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		colors: colors,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.evaluator == nil {
		c.evaluator = eval.NewEvaluator(1)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.run.MutationRate = cfg.MutationRate
	return c
}

// Start validates the configuration, seeds a random population for a
// width x height target and begins a new run. On error the controller is
// left unchanged.
func (c *Controller) Start(target grid.Grid, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", config.ErrInvalid, width, height)
	}
	if c.colors < 1 {
		return fmt.Errorf("%w: palette needs at least one color, got %d", config.ErrInvalid, c.colors)
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if target.Width != width || target.Height != height {
		return fmt.Errorf("%w: target is %dx%d, want %dx%d", config.ErrInvalid, target.Width, target.Height, width, height)
	}
	if err := target.Check(c.colors); err != nil {
		return fmt.Errorf("%w: target: %v", config.ErrInvalid, err)
	}

	c.target = target.Clone()
	c.pop = ga.NewPopulation(c.cfg.Population, width, height, c.colors, c.rng)
	c.run = RunState{
		State:        Running,
		MutationRate: c.cfg.MutationRate,
	}

	c.logger.Info("run started",
		"width", width,
		"height", height,
		"population", c.cfg.Population,
		"mutation_rate", c.cfg.MutationRate,
		"elitism_rate", c.cfg.ElitismRate)
	return nil
}

// Step scores the current generation and breeds the next one. It returns
// false without doing anything unless the controller is running.
func (c *Controller) Step() (Update, bool) {
	if c.run.State != Running {
		return Update{}, false
	}

	// 1. Evaluate
	scores := c.evaluator.ScorePopulation(c.pop.Individuals, c.target)
	idx, score := ga.Best(scores)
	current := c.pop.Individuals[idx]

	// 2. Track best ever
	if score > c.run.BestScore {
		c.run.Best = current.Clone()
		c.run.BestScore = score
		c.run.Stagnant = 0
	} else {
		c.run.Stagnant++
	}

	// 3. Report
	u := Update{
		Generation:   c.run.Generation,
		BestScore:    c.run.BestScore,
		Best:         c.run.Best.Clone(),
		Current:      current.Clone(),
		CurrentScore: score,
		MeanScore:    eval.Summarize(scores).Mean,
		MutationRate: c.run.MutationRate,
		Size:         c.target.Size(),
		Converged:    c.run.BestScore == c.target.Size(),
	}
	for _, o := range c.observers {
		o(u)
	}

	// 4. Perfect match ends the run
	if u.Converged {
		c.run.State = Converged
		c.pop = nil
		c.logger.Info("perfect match found", "generation", c.run.Generation, "score", c.run.BestScore)
		return u, true
	}

	// 5. Breed
	c.pop = c.pop.Next(scores, ga.Params{
		ElitismRate:  c.cfg.ElitismRate,
		MutationRate: c.run.MutationRate,
		Colors:       c.colors,
	}, c.rng)
	c.run.Generation++

	// 6. Adaptive mutation
	if c.run.Stagnant > c.cfg.StagnationThreshold {
		c.run.MutationRate = math.Min(c.cfg.MaxMutationRate, c.run.MutationRate*c.cfg.MutationFactor)
		c.run.Stagnant = 0
		c.logger.Info("mutation rate increased",
			"generation", c.run.Generation,
			"mutation_rate", c.run.MutationRate)
	}

	return u, true
}

// Stop ends the run and discards the population. The best individual and
// score stay readable through RunState.
func (c *Controller) Stop() {
	if c.run.State == Running {
		c.logger.Info("run stopped", "generation", c.run.Generation, "best_score", c.run.BestScore)
	}
	c.run.State = Idle
	c.pop = nil
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.run.State
}

// RunState returns a copy of the run bookkeeping
func (c *Controller) RunState() RunState {
	rs := c.run
	rs.Best = c.run.Best.Clone()
	return rs
}

// Target returns a copy of the target of the current or last run
func (c *Controller) Target() grid.Grid {
	return c.target.Clone()
}
