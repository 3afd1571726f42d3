package report

import (
	"bytes"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"microbench_go/harness"
)

// TimingsChartSVG renders the per-benchmark minimum times as a bar chart
// and returns the SVG document as a string.
func TimingsChartSVG(results []harness.Result) (string, error) {
	p := plot.New()
	p.Title.Text = "Benchmark Minimum Times"
	p.Y.Label.Text = "Milliseconds"

	values := make(plotter.Values, len(results))
	names := make([]string, len(results))
	for i, r := range results {
		values[i] = r.Milliseconds
		names[i] = r.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.9

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SavePlot renders the timings chart and writes it to path.
func SavePlot(path string, results []harness.Result) error {
	svg, err := TimingsChartSVG(results)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
