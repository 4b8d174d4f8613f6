package grid

import (
	"fmt"
	"math/rand"
	"strings"
)

// Grid is a Width x Height matrix of palette indices stored row-major
type Grid struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Cells  []int `json:"cells"`
}

// New creates a grid with every cell set to 0
func New(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
}

// Fill creates a grid with every cell set to value
func Fill(width, height, value int) Grid {
	g := New(width, height)
	for i := range g.Cells {
		g.Cells[i] = value
	}
	return g
}

// Random creates a grid with cells drawn uniformly from [0, colors)
func Random(width, height, colors int, rng *rand.Rand) Grid {
	g := New(width, height)
	for i := range g.Cells {
		g.Cells[i] = rng.Intn(colors)
	}
	return g
}

// Size returns the number of cells
func (g Grid) Size() int {
	return len(g.Cells)
}

// IsZero reports whether the grid is absent
func (g Grid) IsZero() bool {
	return g.Cells == nil
}

// At returns the value at row r, column c
func (g Grid) At(r, c int) int {
	return g.Cells[r*g.Width+c]
}

// Set writes the value at row r, column c
func (g Grid) Set(r, c, v int) {
	g.Cells[r*g.Width+c] = v
}

// SameShape reports whether both grids have identical dimensions
func (g Grid) SameShape(o Grid) bool {
	return g.Width == o.Width && g.Height == o.Height && len(g.Cells) == len(o.Cells)
}

// Equal reports whether both grids have the same shape and cells
func (g Grid) Equal(o Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, v := range g.Cells {
		if o.Cells[i] != v {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the grid
func (g Grid) Clone() Grid {
	if g.Cells == nil {
		return Grid{Width: g.Width, Height: g.Height}
	}
	c := Grid{Width: g.Width, Height: g.Height, Cells: make([]int, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// Check returns an error if the grid is malformed or holds a value outside [0, colors)
func (g Grid) Check(colors int) error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid dimensions %dx%d must be positive", g.Width, g.Height)
	}
	if len(g.Cells) != g.Width*g.Height {
		return fmt.Errorf("grid has %d cells, want %d", len(g.Cells), g.Width*g.Height)
	}
	for i, v := range g.Cells {
		if v < 0 || v >= colors {
			return fmt.Errorf("cell (%d,%d) = %d outside palette [0,%d)", i/g.Width, i%g.Width, v, colors)
		}
	}
	return nil
}

// Rows returns the grid as one string of digits per row
func (g Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for r := 0; r < g.Height; r++ {
		sb.Reset()
		for c := 0; c < g.Width; c++ {
			fmt.Fprintf(&sb, "%d", g.At(r, c))
		}
		rows[r] = sb.String()
	}
	return rows
}

func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ParseRows builds a grid from rows of single-digit palette indices.
// Blank rows are skipped; all rows must have the same length.
func ParseRows(rows []string) (Grid, error) {
	var g Grid
	for _, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		if g.Width == 0 {
			g.Width = len(row)
		} else if len(row) != g.Width {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d", g.Height, len(row), g.Width)
		}
		for i, ch := range row {
			if ch < '0' || ch > '9' {
				return Grid{}, fmt.Errorf("row %d col %d: %q is not a palette index", g.Height, i, ch)
			}
			g.Cells = append(g.Cells, int(ch-'0'))
		}
		g.Height++
	}
	if g.Height == 0 {
		return Grid{}, fmt.Errorf("no rows")
	}
	return g, nil
}
