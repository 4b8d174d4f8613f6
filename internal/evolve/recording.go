package evolve

import (
	"encoding/json"
	"os"

	"pixelga/internal/grid"
)

// Frame is one recorded generation
type Frame struct {
	Generation   int       `json:"generation"`
	BestScore    int       `json:"best_score"`
	MutationRate float64   `json:"mutation_rate"`
	Grid         grid.Grid `json:"grid"`
}

// Recording stores the progress of a run for playback
type Recording struct {
	RunID     string    `json:"run_id"`
	Seed      int64     `json:"seed"`
	Target    grid.Grid `json:"target"`
	Frames    []Frame   `json:"frames"`
	Converged bool      `json:"converged"`

	onlyImprovements bool
	lastScore        int
}

// NewRecording creates a new recorder. When onlyImprovements is set, a frame
// is kept only when the best score rises, plus the final frame.
func NewRecording(runID string, seed int64, target grid.Grid, onlyImprovements bool) *Recording {
	return &Recording{
		RunID:            runID,
		Seed:             seed,
		Target:           target.Clone(),
		Frames:           make([]Frame, 0, 256),
		onlyImprovements: onlyImprovements,
		lastScore:        -1,
	}
}

// Observe records an Update; it satisfies Observer
func (r *Recording) Observe(u Update) {
	if r.onlyImprovements && u.BestScore <= r.lastScore && !u.Converged {
		return
	}
	g := u.Best
	if g.IsZero() {
		g = u.Current
	}
	r.Frames = append(r.Frames, Frame{
		Generation:   u.Generation,
		BestScore:    u.BestScore,
		MutationRate: u.MutationRate,
		Grid:         g.Clone(),
	})
	r.lastScore = u.BestScore
	r.Converged = u.Converged
}

// Save writes the recording to a file
func (r *Recording) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadRecording loads a recording from a file
func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// FrameAt returns frame i, clamped to the recorded range
func (r *Recording) FrameAt(i int) (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.Frames) {
		i = len(r.Frames) - 1
	}
	return r.Frames[i], true
}
