package render

import (
	"errors"
	"io"
	"math"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Legend entries of the class bar chart.
const (
	TrainLegend = "Training data"
	ValidLegend = "Validation data"
)

// ErrNoBars indicates a bar chart where both groups are empty.
var ErrNoBars = errors.New("bar chart has no categories")

// RenderBar draws green training bars next to red validation bars for every class.
func RenderBar(w io.Writer, bc *models.BarChart, cfg Config) error {
	cfg = cfg.WithDefaults()

	bars := classBars(bc.Data)
	if len(bars) == 0 {
		return ErrNoBars
	}

	graph := chart.BarChart{
		Title:      bc.Title,
		TitleStyle: chart.Style{FontSize: cfg.FontSize},
		Width:      cfg.Width,
		Height:     cfg.Height,
		DPI:        cfg.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 12, Bottom: 16 + int(cfg.FontSize*1.5)}},
		BarWidth:   barWidth(cfg, len(bars)),
		XAxis:      chart.Style{FontSize: tickFontSize(cfg)},
		YAxis: chart.YAxis{
			Name:      bc.YLabel,
			NameStyle: chart.Style{FontSize: cfg.FontSize},
			Style:          chart.Style{FontSize: tickFontSize(cfg)},
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: yMax(bc.YMax, bars)},
		},
		Bars: bars,
	}

	legend := []chart.Series{
		chart.ContinuousSeries{Name: TrainLegend, Style: chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 4}},
		chart.ContinuousSeries{Name: ValidLegend, Style: chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 4}},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&chart.Chart{Series: legend}, legendStyle(cfg)),
		xTitle(bc.XLabel, cfg),
	}

	return graph.Render(cfg.provider(), w)
}

// yMax returns the fixed cap when positive, otherwise the tallest bar plus
// 5% headroom. Bars always start at 0.
func yMax(fixed float64, bars []chart.Value) float64 {
	if fixed > 0 {
		return fixed
	}
	top := 0.0
	for _, b := range bars {
		top = math.Max(top, b.Value)
	}
	if top == 0 {
		return 1
	}
	return math.Ceil(top + top/20)
}

// xTitle draws the x axis title centered below the bars. go-chart bar charts
// have no axis name of their own.
func xTitle(text string, cfg Config) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		if text == "" {
			return
		}
		style := chart.Style{FontSize: cfg.FontSize, FontColor: chart.ColorBlack}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)
		tb := r.MeasureText(text)
		r.Text(text, (cfg.Width-tb.Width())/2, cfg.Height-8)
	}
}

// classLabels lists labels in train order, then labels only seen in valid.
func classLabels(tv models.TrainValid) []string {
	labels := tv.Train.Labels()
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		seen[l] = true
	}
	for _, l := range tv.Valid.Labels() {
		if !seen[l] {
			labels = append(labels, l)
			seen[l] = true
		}
	}
	return labels
}

// classBars emits a train and a valid bar per label. A label missing from
// one group gets a zero bar for that group.
func classBars(tv models.TrainValid) []chart.Value {
	var bars []chart.Value
	for _, l := range classLabels(tv) {
		bars = append(bars,
			chart.Value{Label: l + " (train)", Value: float64(tv.Train.Count(l)), Style: barStyle(chart.ColorGreen)},
			chart.Value{Label: l + " (valid)", Value: float64(tv.Valid.Count(l)), Style: barStyle(chart.ColorRed)},
		)
	}
	return bars
}

func barStyle(fill drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   fill,
		StrokeColor: chart.ColorBlack,
		StrokeWidth: 1,
	}
}

// barWidth spreads the bars over half of the image width.
func barWidth(cfg Config, n int) int {
	w := cfg.Width / 2 / n
	if w < 8 {
		return 8
	}
	return w
}
