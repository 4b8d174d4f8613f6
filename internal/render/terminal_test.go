package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"pixelga/internal/grid"
)

func TestGridHasOneLinePerRowPlusBorder(t *testing.T) {
	d := NewDisplay(grid.DefaultPalette)
	g := grid.Fill(4, 3, grid.Background)
	out := d.Grid(g)
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5:\n%s", len(lines), out)
	}
	if w := lipgloss.Width(out); w != 10 {
		t.Fatalf("rendered width %d, want 10", w)
	}
}

func TestStatusAndLegend(t *testing.T) {
	d := NewDisplay(grid.DefaultPalette)
	if s := d.Status(12, 20, 25, false); !strings.Contains(s, "Generation: 12 | Best score: 20/25") {
		t.Fatalf("status %q", s)
	}
	if s := d.Status(3, 9, 9, true); !strings.Contains(s, "perfect match") {
		t.Fatalf("status %q", s)
	}
	legend := d.Legend()
	for _, name := range []string{"blue", "green", "yellow", "white", "black"} {
		if !strings.Contains(legend, name) {
			t.Fatalf("legend %q misses %s", legend, name)
		}
	}
}

func TestSideBySideShowsBothLabels(t *testing.T) {
	d := NewDisplay(grid.DefaultPalette)
	out := d.SideBySide(grid.Fill(2, 2, 0), grid.Fill(2, 2, 1))
	if !strings.Contains(out, "Target") || !strings.Contains(out, "Best") {
		t.Fatalf("missing labels:\n%s", out)
	}
}
