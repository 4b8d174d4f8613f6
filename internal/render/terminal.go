package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelga/internal/grid"
)

// Display renders grids as blocks of terminal background color
type Display struct {
	palette grid.Palette
	cells   []lipgloss.Style
	frame   lipgloss.Style
	label   lipgloss.Style
}

// NewDisplay creates a display for the given palette
func NewDisplay(palette grid.Palette) *Display {
	d := &Display{
		palette: palette,
		cells:   make([]lipgloss.Style, len(palette)),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffffff")),
		label: lipgloss.NewStyle().Bold(true),
	}
	for i, c := range palette {
		d.cells[i] = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	}
	return d
}

// Grid renders g inside a border, two columns per cell
func (d *Display) Grid(g grid.Grid) string {
	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			sb.WriteString(d.cell(g.At(r, c)).Render("  "))
		}
		if r < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return d.frame.Render(sb.String())
}

func (d *Display) cell(idx int) lipgloss.Style {
	if idx < 0 || idx >= len(d.cells) {
		return d.cells[len(d.cells)-1]
	}
	return d.cells[idx]
}

// SideBySide renders the target next to the candidate
func (d *Display) SideBySide(target, candidate grid.Grid) string {
	left := lipgloss.JoinVertical(lipgloss.Center, d.label.Render("Target"), d.Grid(target))
	right := lipgloss.JoinVertical(lipgloss.Center, d.label.Render("Best"), d.Grid(candidate))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// Status renders the generation and score line
func (d *Display) Status(generation, score, size int, converged bool) string {
	line := fmt.Sprintf("Generation: %d | Best score: %d/%d", generation, score, size)
	if converged {
		line += " | perfect match"
	}
	return d.label.Render(line)
}

// Legend lists the palette with its indices
func (d *Display) Legend() string {
	parts := make([]string, len(d.palette))
	for i, c := range d.palette {
		parts[i] = d.cells[i].Render("  ") + fmt.Sprintf(" %d %s", i, c.Name)
	}
	return strings.Join(parts, "  ")
}
