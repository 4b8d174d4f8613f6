package logging

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pixelga/internal/evolve"
	"pixelga/internal/grid"
)

// BestData is the saved form of a run's best individual
type BestData struct {
	RunID      string    `json:"run_id"`
	Generation int       `json:"generation"`
	Score      int       `json:"score"`
	Size       int       `json:"size"`
	Converged  bool      `json:"converged"`
	Grid       grid.Grid `json:"grid"`
	Rows       []string  `json:"rows"`
}

// SaveBest saves the best individual of an Update to a file
func SaveBest(path, runID string, u evolve.Update) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	g := u.Best
	if g.IsZero() {
		g = u.Current
	}
	data := BestData{
		RunID:      runID,
		Generation: u.Generation,
		Score:      u.BestScore,
		Size:       u.Size,
		Converged:  u.Converged,
		Grid:       g,
		Rows:       g.Rows(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadBest loads a saved best individual
func LoadBest(path string) (*BestData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved BestData
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
