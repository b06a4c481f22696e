package render

import (
	"errors"
	"io"
	"math"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Legend entries used when an average overlay is drawn.
const (
	RunsLegend    = "Train-Valid"
	AverageLegend = "Averages"
)

var (
	runColor     = drawing.ColorFromHex("808080")
	averageColor = chart.ColorRed
)

// ErrNoRuns indicates a line chart without any run series.
var ErrNoRuns = errors.New("line chart has no runs")

// RenderLine draws a line chart. Runs get distinct palette colors unless an
// average is present, in which case runs are gray and the average red.
func RenderLine(w io.Writer, lc *models.LineChart, cfg Config) error {
	if len(lc.Runs) == 0 {
		return ErrNoRuns
	}
	cfg = cfg.WithDefaults()

	var series, legend []chart.Series
	if lc.LegendTitle != "" && lc.Average == nil {
		legend = append(legend, chart.ContinuousSeries{
			Name:  lc.LegendTitle,
			Style: chart.Style{StrokeColor: chart.ColorTransparent},
		})
	}

	for i, run := range lc.Runs {
		style := lineStyle(chart.GetDefaultColor(i))
		if lc.Average != nil {
			style = lineStyle(runColor)
		}
		s := chart.ContinuousSeries{
			Name:    run.Name,
			XValues: run.X,
			YValues: run.Y,
			Style:   style,
		}
		series = append(series, s)

		switch {
		case lc.Average == nil:
			legend = append(legend, s)
		case i == 0:
			s.Name = RunsLegend
			legend = append(legend, s)
		}
	}

	if lc.Average != nil {
		avg := chart.ContinuousSeries{
			Name:    lc.Average.Name,
			XValues: lc.Average.X,
			YValues: lc.Average.Y,
			Style:   lineStyle(averageColor),
		}
		series = append(series, avg)
		avg.Name = AverageLegend
		legend = append(legend, avg)
	}

	graph := chart.Chart{
		Title:      lc.Title,
		TitleStyle: chart.Style{FontSize: cfg.FontSize},
		Width:      cfg.Width,
		Height:     cfg.Height,
		DPI:        cfg.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:      lc.XLabel,
			NameStyle: chart.Style{FontSize: cfg.FontSize},
			Style:     chart.Style{FontSize: tickFontSize(cfg)},
		},
		YAxis: chart.YAxis{
			Name:      lc.YLabel,
			NameStyle: chart.Style{FontSize: cfg.FontSize},
			Style:     chart.Style{FontSize: tickFontSize(cfg)},
		},
		Series: series,
	}
	if lo, hi, flat := flatRange(series, xValues); flat {
		graph.XAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	}
	if lo, hi, flat := flatRange(series, yValues); flat {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&chart.Chart{Series: legend}, legendStyle(cfg))}

	return graph.Render(cfg.provider(), w)
}

func xValues(s chart.ContinuousSeries) []float64 { return s.XValues }
func yValues(s chart.ContinuousSeries) []float64 { return s.YValues }

// flatRange reports whether every value on an axis is the same, and if so
// returns a range padded around it. go-chart cannot draw a zero-width axis.
func flatRange(series []chart.Series, values func(chart.ContinuousSeries) []float64) (lo, hi float64, flat bool) {
	first := true
	var v float64
	for _, s := range series {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		for _, x := range values(cs) {
			if first {
				v, first = x, false
				continue
			}
			if x != v {
				return 0, 0, false
			}
		}
	}
	if first {
		return 0, 0, false
	}
	pad := math.Abs(v) * 0.05
	if pad == 0 {
		pad = 0.05
	}
	return v - pad, v + pad, true
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 1.5,
	}
}

func tickFontSize(cfg Config) float64 {
	return cfg.FontSize * 0.75
}

func legendStyle(cfg Config) chart.Style {
	return chart.Style{FontSize: cfg.FontSize * 0.6}
}
