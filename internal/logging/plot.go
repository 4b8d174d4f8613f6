package logging

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFitness draws best and mean score per generation and saves it to
// outPath. The image format follows the file extension.
func PlotFitness(h *History, title, outPath string) error {
	if h.Len() == 0 {
		return fmt.Errorf("no generations to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Matching cells"

	bestPts := make(plotter.XYs, h.Len())
	meanPts := make(plotter.XYs, h.Len())
	for i := range h.Gen {
		bestPts[i].X = h.Gen[i]
		bestPts[i].Y = h.Best[i]

		meanPts[i].X = h.Gen[i]
		meanPts[i].Y = h.Mean[i]
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return err
	}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
