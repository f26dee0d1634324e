package metrics

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderPNG draws the confusion matrix as a heat map with per-cell counts
// and writes it to path as a PNG.
func (c *Confusion) RenderPNG(path string) error {
	n := len(c.Classes)
	if n == 0 {
		return fmt.Errorf("metrics: empty confusion matrix")
	}

	p := plot.New()
	p.Title.Text = "Confusion matrix"
	p.X.Label.Text = "predicted"
	p.Y.Label.Text = "true"

	hm := plotter.NewHeatMap(confusionGrid{c}, moreland.SmoothBlueRed().Palette(255))
	p.Add(hm)

	ticks := make([]plot.Tick, n)
	for i, class := range c.Classes {
		ticks[i] = plot.Tick{Value: float64(i), Label: class}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	counts, err := plotter.NewLabels(c.cellLabels())
	if err != nil {
		return fmt.Errorf("metrics: cell labels: %w", err)
	}
	p.Add(counts)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("metrics: render %s: %w", path, err)
	}
	return nil
}

func (c *Confusion) cellLabels() plotter.XYLabels {
	var l plotter.XYLabels
	for row := range c.Counts {
		for col, count := range c.Counts[row] {
			l.XYs = append(l.XYs, plotter.XY{X: float64(col), Y: float64(row)})
			l.Labels = append(l.Labels, fmt.Sprintf("%d", count))
		}
	}
	return l
}

// confusionGrid adapts a Confusion to the heat map's grid interface.
// Row r of the matrix maps to Y value r, so true classes run up the Y axis.
type confusionGrid struct {
	c *Confusion
}

func (g confusionGrid) Dims() (cols, rows int) {
	n := len(g.c.Classes)
	return n, n
}

func (g confusionGrid) Z(col, row int) float64 { return float64(g.c.Counts[row][col]) }
func (g confusionGrid) X(col int) float64      { return float64(col) }
func (g confusionGrid) Y(row int) float64      { return float64(row) }
