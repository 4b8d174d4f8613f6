package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"pixelga/internal/config"
	"pixelga/internal/eval"
	"pixelga/internal/evolve"
	"pixelga/internal/grid"
	"pixelga/internal/logging"
	"pixelga/internal/render"
)

var (
	configPath  string
	targetPath  string
	generations int
	seed        int64
	tickMS      int
	display     bool
)

var rootCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Evolve random grids until one matches a painted target",
	Long: `Runs a generational genetic algorithm (elitism, roulette selection,
uniform crossover, adaptive mutation) against a target grid read from the
config file or from a text file with one row of palette digits per line.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (defaults built in)")
	rootCmd.Flags().StringVarP(&targetPath, "target", "t", "", "text file with the target grid, one row per line")
	rootCmd.Flags().IntVarP(&generations, "generations", "g", 0, "generation cap (overrides run.max_generations)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config seed)")
	rootCmd.Flags().IntVar(&tickMS, "tick", -1, "milliseconds between generations (overrides run.tick_ms)")
	rootCmd.Flags().BoolVarP(&display, "display", "d", false, "draw target and best grid in the terminal")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	cfg.Logging.EveryGenSummary = true
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if cmd.Flags().Changed("generations") {
		cfg.Run.MaxGenerations = generations
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("tick") {
		cfg.Run.TickMS = tickMS
	}
	if targetPath != "" {
		rows, err := readLines(targetPath)
		if err != nil {
			return nil, fmt.Errorf("reading target: %w", err)
		}
		cfg.Target = rows
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	target, err := cfg.TargetGrid()
	if err != nil {
		return err
	}

	runID := ulid.Make().String()
	runDir := filepath.Join(cfg.Logging.Dir, runID)
	out := cmd.OutOrStdout()
	events := logging.NewEventLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format).
		With("run_id", runID)

	console := out
	if display || !cfg.Logging.EveryGenSummary {
		console = nil
	}
	metrics, err := logging.NewLogger(runDir, console)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	if err := metrics.Init(); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer metrics.Close()

	palette := grid.DefaultPalette
	if cfg.Grid.Colors != palette.Size() {
		events.Warn("palette size differs from the default palette, colors beyond it render as the last entry",
			"colors", cfg.Grid.Colors)
	}
	recording := evolve.NewRecording(runID, cfg.Seed, target, true)

	ctrl := evolve.NewController(cfg.GA, cfg.Grid.Colors, rand.New(rand.NewSource(cfg.Seed)),
		evolve.WithEvaluator(eval.NewEvaluator(cfg.Eval.Workers)),
		evolve.WithLogger(events),
		evolve.WithObserver(metrics.LogGeneration),
		evolve.WithObserver(recording.Observe),
	)
	if err := ctrl.Start(target, target.Width, target.Height); err != nil {
		return err
	}

	fmt.Fprintf(out, "Run %s | Target %dx%d | Population: %d | Mutation: %.3f | Elitism: %.2f\n",
		runID, target.Width, target.Height, cfg.GA.Population, cfg.GA.MutationRate, cfg.GA.ElitismRate)

	view := render.NewDisplay(palette)
	startTime := time.Now()

	var ticker *time.Ticker
	if cfg.Run.TickMS > 0 {
		ticker = time.NewTicker(time.Duration(cfg.Run.TickMS) * time.Millisecond)
		defer ticker.Stop()
	}

	var last evolve.Update
	for gen := 0; gen < cfg.Run.MaxGenerations; gen++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
		if ctx.Err() != nil {
			ctrl.Stop()
			break
		}

		u, ok := ctrl.Step()
		if !ok {
			break
		}
		last = u

		if display {
			fmt.Fprint(out, "\033[H\033[2J")
			fmt.Fprintln(out, view.SideBySide(target, displayed(u)))
			fmt.Fprintln(out, view.Status(u.Generation, u.BestScore, u.Size, u.Converged))
			fmt.Fprintln(out, view.Legend())
		}
		if u.Converged {
			break
		}
	}
	ctrl.Stop()

	elapsed := time.Since(startTime)
	fmt.Fprintln(out, "---")
	if last.Converged {
		fmt.Fprintf(out, "Perfect match found at generation %d in %v\n", last.Generation, elapsed)
	} else {
		fmt.Fprintf(out, "Stopped after generation %d in %v: best %d/%d\n", last.Generation, elapsed, last.BestScore, last.Size)
	}

	if last.Size == 0 {
		return nil
	}
	if err := logging.SaveBest(filepath.Join(runDir, "best.json"), runID, last); err != nil {
		return fmt.Errorf("saving best: %w", err)
	}
	if err := recording.Save(filepath.Join(runDir, "recording.json")); err != nil {
		return fmt.Errorf("saving recording: %w", err)
	}
	if err := logging.PlotFitness(metrics.History(), "Run "+runID, filepath.Join(runDir, "fitness.png")); err != nil {
		events.Warn("fitness plot not written", "err", err)
	}
	fmt.Fprintf(out, "Artifacts written to %s\n", runDir)
	return nil
}

func displayed(u evolve.Update) grid.Grid {
	if u.Best.IsZero() {
		return u.Current
	}
	return u.Best
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	return rows, sc.Err()
}
