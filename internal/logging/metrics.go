package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pixelga/internal/evolve"
)

// Logger handles per-generation metrics output
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	initialized bool

	history History
}

// NewLogger creates a new logger writing into dir. console may be nil.
func NewLogger(dir string, console io.Writer) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Logger{
		csvPath:  filepath.Join(dir, "metrics.csv"),
		jsonPath: filepath.Join(dir, "metrics.jsonl"),
		console:  console,
	}, nil
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "best_score", "current_score", "mean_score", "size", "mutation_rate", "converged",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation   int     `json:"generation"`
	BestScore    int     `json:"best_score"`
	CurrentScore int     `json:"current_score"`
	MeanScore    float64 `json:"mean_score"`
	Size         int     `json:"size"`
	MutationRate float64 `json:"mutation_rate"`
	Converged    bool    `json:"converged"`
}

// LogGeneration records one Update; it satisfies evolve.Observer
func (l *Logger) LogGeneration(u evolve.Update) {
	l.history.Add(u)
	if !l.initialized {
		return
	}

	summary := GenerationSummary{
		Generation:   u.Generation,
		BestScore:    u.BestScore,
		CurrentScore: u.CurrentScore,
		MeanScore:    u.MeanScore,
		Size:         u.Size,
		MutationRate: u.MutationRate,
		Converged:    u.Converged,
	}

	row := []string{
		strconv.Itoa(summary.Generation),
		strconv.Itoa(summary.BestScore),
		strconv.Itoa(summary.CurrentScore),
		fmt.Sprintf("%.2f", summary.MeanScore),
		strconv.Itoa(summary.Size),
		fmt.Sprintf("%.4f", summary.MutationRate),
		strconv.FormatBool(summary.Converged),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(summary)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	if l.console != nil {
		fmt.Fprintf(l.console, "Gen %4d | Best %d/%d | Mean: %6.2f | Mutation: %.4f\n",
			summary.Generation, summary.BestScore, summary.Size, summary.MeanScore, summary.MutationRate)
	}
}

// History returns the series recorded so far
func (l *Logger) History() *History {
	return &l.history
}

// History keeps the best and mean score of every logged generation
type History struct {
	Gen  []float64
	Best []float64
	Mean []float64
}

// Add appends one generation
func (h *History) Add(u evolve.Update) {
	h.Gen = append(h.Gen, float64(u.Generation))
	h.Best = append(h.Best, float64(u.BestScore))
	h.Mean = append(h.Mean, u.MeanScore)
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.Gen)
}
