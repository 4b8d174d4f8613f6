package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "seed: 7\ngrid:\n  width: 3\n  height: 4\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Grid.Width != 3 || cfg.Grid.Height != 4 {
		t.Fatalf("explicit values lost: %+v", cfg.Grid)
	}
	if cfg.GA.Population != 50 || cfg.GA.MutationRate != 0.01 || cfg.GA.ElitismRate != 0.1 {
		t.Fatalf("unexpected GA defaults: %+v", cfg.GA)
	}
	if cfg.GA.StagnationThreshold != 50 || cfg.GA.MaxMutationRate != 0.2 || cfg.GA.MutationFactor != 1.5 {
		t.Fatalf("unexpected adaptive defaults: %+v", cfg.GA)
	}
	if cfg.Grid.Colors != 5 || cfg.Grid.Background != 4 {
		t.Fatalf("unexpected palette defaults: %+v", cfg.Grid)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative width":   "grid:\n  width: -1\n",
		"rate above one":   "ga:\n  mutation_rate: 1.5\n",
		"negative elitism": "ga:\n  elitism_rate: -0.1\n",
		"max below base":   "ga:\n  mutation_rate: 0.5\n  max_mutation_rate: 0.3\n",
		"shrinking factor": "ga:\n  mutation_factor: 0.5\n",
		"bad yaml":         "grid: [",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", name, err)
		}
	}
}

func TestTargetGrid(t *testing.T) {
	cfg := Default()
	g, err := cfg.TargetGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 5 || g.Height != 5 {
		t.Fatalf("default target is %dx%d", g.Width, g.Height)
	}
	for _, v := range g.Cells {
		if v != 4 {
			t.Fatalf("default target should be background, got %v", g.Cells)
		}
	}

	cfg.Target = []string{"01", "29"}
	if _, err := cfg.TargetGrid(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected out-of-palette target to fail, got %v", err)
	}
}

func TestGAValidate(t *testing.T) {
	ga := DefaultGA()
	if err := ga.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	ga.Population = 0
	if err := ga.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "default.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	target, err := cfg.TargetGrid()
	if err != nil {
		t.Fatal(err)
	}
	if target.Width != cfg.Grid.Width || target.Height != cfg.Grid.Height {
		t.Fatalf("target %dx%d does not match grid %dx%d", target.Width, target.Height, cfg.Grid.Width, cfg.Grid.Height)
	}
	if !cfg.Logging.EveryGenSummary || cfg.Run.TickMS != 50 {
		t.Fatalf("unexpected run/logging settings: %+v %+v", cfg.Run, cfg.Logging)
	}
}
