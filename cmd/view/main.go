package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pixelga/internal/evolve"
	"pixelga/internal/grid"
	"pixelga/internal/logging"
	"pixelga/internal/render"
)

var delay int

var rootCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the artifacts of a replicate run",
}

var bestCmd = &cobra.Command{
	Use:   "best <best.json>",
	Short: "Render a saved best individual",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		best, err := logging.LoadBest(args[0])
		if err != nil {
			return fmt.Errorf("loading best: %w", err)
		}

		out := cmd.OutOrStdout()
		d := render.NewDisplay(grid.DefaultPalette)
		fmt.Fprintf(out, "Run %s\n", best.RunID)
		fmt.Fprintln(out, d.Grid(best.Grid))
		fmt.Fprintln(out, d.Status(best.Generation, best.Score, best.Size, best.Converged))
		return nil
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <recording.json>",
	Short: "Play back the improvements of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := evolve.LoadRecording(args[0])
		if err != nil {
			return fmt.Errorf("loading recording: %w", err)
		}
		if len(rec.Frames) == 0 {
			return fmt.Errorf("recording %s has no frames", args[0])
		}

		out := cmd.OutOrStdout()
		d := render.NewDisplay(grid.DefaultPalette)
		frameDelay := time.Duration(delay) * time.Millisecond
		size := rec.Target.Size()

		for i := range rec.Frames {
			f, _ := rec.FrameAt(i)
			fmt.Fprint(out, "\033[H\033[2J")
			fmt.Fprintf(out, "Run %s (seed %d) | frame %d/%d\n", rec.RunID, rec.Seed, i+1, len(rec.Frames))
			fmt.Fprintln(out, d.SideBySide(rec.Target, f.Grid))
			converged := rec.Converged && i == len(rec.Frames)-1
			fmt.Fprintln(out, d.Status(f.Generation, f.BestScore, size, converged))
			fmt.Fprintf(out, "Mutation rate: %.4f\n", f.MutationRate)
			if i < len(rec.Frames)-1 {
				time.Sleep(frameDelay)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bestCmd, replayCmd)
	replayCmd.Flags().IntVar(&delay, "delay", 100, "delay between frames in milliseconds")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
