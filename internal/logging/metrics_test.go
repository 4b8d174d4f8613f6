package logging

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixelga/internal/evolve"
	"pixelga/internal/grid"
)

func sampleUpdates() []evolve.Update {
	g := grid.Fill(2, 2, 3)
	return []evolve.Update{
		{Generation: 0, BestScore: 2, CurrentScore: 2, MeanScore: 1.25, Size: 4, MutationRate: 0.01, Best: g, Current: g},
		{Generation: 1, BestScore: 3, CurrentScore: 3, MeanScore: 1.75, Size: 4, MutationRate: 0.01, Best: g, Current: g},
		{Generation: 2, BestScore: 4, CurrentScore: 4, MeanScore: 2.5, Size: 4, MutationRate: 0.01, Best: g, Current: g, Converged: true},
	}
}

func TestLoggerWritesCSVAndJSON(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	l, err := NewLogger(dir, &console)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Init(); err != nil {
		t.Fatal(err)
	}
	for _, u := range sampleUpdates() {
		l.LogGeneration(u)
	}
	l.Close()

	f, err := os.Open(filepath.Join(dir, "metrics.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 || records[0][0] != "generation" {
		t.Fatalf("unexpected csv %v", records)
	}
	if records[3][1] != "4" || records[3][6] != "true" {
		t.Fatalf("last row %v", records[3])
	}

	jf, err := os.Open(filepath.Join(dir, "metrics.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer jf.Close()
	lines := 0
	sc := bufio.NewScanner(jf)
	for sc.Scan() {
		var s GenerationSummary
		if err := json.Unmarshal(sc.Bytes(), &s); err != nil {
			t.Fatalf("line %d: %v", lines, err)
		}
		if s.Generation != lines {
			t.Fatalf("line %d has generation %d", lines, s.Generation)
		}
		lines++
	}
	if lines != 3 {
		t.Fatalf("%d json lines, want 3", lines)
	}

	if !strings.Contains(console.String(), "Gen    2 | Best 4/4") {
		t.Fatalf("console output %q", console.String())
	}
	if l.History().Len() != 3 {
		t.Fatalf("history has %d entries", l.History().Len())
	}
}

func TestHistoryWithoutInit(t *testing.T) {
	l, err := NewLogger(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	l.LogGeneration(sampleUpdates()[0])
	if l.History().Len() != 1 {
		t.Fatal("history should record even without log files")
	}
}

func TestSaveAndLoadBest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "best.json")
	u := sampleUpdates()[2]
	if err := SaveBest(path, "run-1", u); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBest(path)
	if err != nil {
		t.Fatal(err)
	}
	if b.RunID != "run-1" || b.Score != 4 || !b.Converged || !b.Grid.Equal(u.Best) {
		t.Fatalf("unexpected best %+v", b)
	}
	if len(b.Rows) != 2 || b.Rows[0] != "33" {
		t.Fatalf("rows %v", b.Rows)
	}
}

func TestPlotFitness(t *testing.T) {
	var h History
	for _, u := range sampleUpdates() {
		h.Add(u)
	}
	out := filepath.Join(t.TempDir(), "fitness.png")
	if err := PlotFitness(&h, "test run", out); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty plot")
	}

	if err := PlotFitness(&History{}, "empty", out); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestNewEventLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewEventLogger(&buf, "warn", "json")
	log.Info("hidden")
	log.Warn("shown", "generation", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"generation":3`) {
		t.Fatalf("unexpected log output %q", out)
	}
}
