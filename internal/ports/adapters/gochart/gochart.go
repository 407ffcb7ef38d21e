package gochart

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/forPelevin/tsvreport/internal/ports/adapters/raster"
	"github.com/forPelevin/tsvreport/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// Pie renders a pie chart whose slices are labelled with name and share.
func (a *Adapter) Pie(outPNG, title string, counts []types.Count) error {
	return raster.WritePNG(outPNG, func(w io.Writer) error {
		if total(counts) == 0 {
			return raster.Placeholder(w, title)
		}
		pie := chart.PieChart{
			Title:  title,
			Width:  raster.Width,
			Height: raster.Height,
			Background: chart.Style{
				Padding: chart.Box{Top: raster.TitleBand},
			},
			Values: pieValues(counts),
		}
		return pie.Render(chart.PNG, w)
	})
}

// Bar renders one bar per count, in the given order, on a y-axis from zero.
func (a *Adapter) Bar(outPNG, title string, counts []types.Count) error {
	return raster.WritePNG(outPNG, func(w io.Writer) error {
		if total(counts) == 0 {
			return raster.Placeholder(w, title)
		}
		bars := make([]chart.Value, 0, len(counts))
		for _, c := range counts {
			bars = append(bars, chart.Value{Label: c.Key, Value: float64(c.N)})
		}
		bar := chart.BarChart{
			Title:  title,
			Width:  raster.Width,
			Height: raster.Height,
			Background: chart.Style{
				Padding: chart.Box{Top: raster.TitleBand, Bottom: 24},
			},
			BarWidth: barWidth(len(counts)),
			XAxis:    chart.Style{TextRotationDegrees: 45},
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: 0, Max: yMax(counts)},
			},
			Bars: bars,
		}
		return bar.Render(chart.PNG, w)
	})
}

func pieValues(counts []types.Count) []chart.Value {
	sum := float64(total(counts))
	out := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		share := 100 * float64(c.N) / sum
		out = append(out, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", c.Key, share),
			Value: float64(c.N),
		})
	}
	return out
}

func total(counts []types.Count) int {
	n := 0
	for _, c := range counts {
		n += c.N
	}
	return n
}

// yMax leaves headroom above the tallest bar and is never zero.
func yMax(counts []types.Count) float64 {
	m := 0
	for _, c := range counts {
		if c.N > m {
			m = c.N
		}
	}
	return float64(m + max(1, m/10))
}

func barWidth(n int) int {
	const plotWidth = raster.Width - 160
	w := plotWidth / (2 * n)
	switch {
	case w > 80:
		return 80
	case w < 4:
		return 4
	}
	return w
}
