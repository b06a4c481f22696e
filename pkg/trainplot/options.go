// Package trainplot renders training metric charts for cross-validation runs.
package trainplot

import (
	"fmt"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
	"go.uber.org/zap"
)

// DefaultXColumn is the metric-log column used as the shared x axis.
const DefaultXColumn = "epoch"

// AverageName is the series name of the averaged overlay.
const AverageName = "Average"

// PlotOptions configures a metric plotted across several runs.
type PlotOptions struct {
	// MetricColumn is the header of the plotted column (e.g., "metrics/recall").
	MetricColumn string
	// XColumn is the header of the x axis column. Defaults to "epoch".
	XColumn string
	// Title is the chart title.
	Title string
	// XLabel is the X-axis title. Defaults to "Epoch".
	XLabel string
	// YLabel is the Y-axis title.
	YLabel string
	// LegendTitle heads the run entries of the legend (ignored with an average).
	LegendTitle string
	// IncludeAverage adds the element-wise mean of all runs as an overlay.
	IncludeAverage bool
	// RunLabels overrides the legend name of each input, by position.
	// If nil, runs are named after the directory holding their file.
	RunLabels []string
	// Inputs lists the metric files, one per run.
	Inputs []string
	// Output is the image path.
	Output string
	// Workbook, if set, is an xlsx path receiving the chart data and a native chart.
	Workbook string
	// Render holds the image settings.
	Render render.Config
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *zap.Logger
}

// Validate checks that the options describe a drawable chart.
func (o PlotOptions) Validate() error {
	if strings.TrimSpace(o.MetricColumn) == "" {
		return fmt.Errorf("metric column is required")
	}
	if len(o.Inputs) == 0 {
		return ErrNoInputs
	}
	if o.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if o.RunLabels != nil && len(o.RunLabels) != len(o.Inputs) {
		return fmt.Errorf("got %d run labels for %d inputs", len(o.RunLabels), len(o.Inputs))
	}
	return o.Render.Validate()
}

func (o PlotOptions) xColumn() string {
	if o.XColumn == "" {
		return DefaultXColumn
	}
	return o.XColumn
}

func (o PlotOptions) xLabel() string {
	if o.XLabel == "" {
		return "Epoch"
	}
	return o.XLabel
}

// BarOptions configures the class distribution chart of one train/valid split.
type BarOptions struct {
	// Instance is the split name (e.g., "train2345-valid1"); it is the default title.
	Instance string
	// TrainDir holds the training label files.
	TrainDir string
	// ValidDir holds the validation label files.
	ValidDir string
	// Title is the chart title. Defaults to Instance.
	Title string
	// YMax caps the Y axis when positive.
	YMax float64
	// Output is the image path.
	Output string
	// Workbook, if set, is an xlsx path receiving the counts and a native chart.
	Workbook string
	// Render holds the image settings.
	Render render.Config
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *zap.Logger
}

// Validate checks that the options describe a drawable chart.
func (o BarOptions) Validate() error {
	if o.TrainDir == "" || o.ValidDir == "" {
		return fmt.Errorf("train and valid label directories are required")
	}
	if o.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if o.YMax < 0 {
		return fmt.Errorf("y max must not be negative")
	}
	return o.Render.Validate()
}

func (o BarOptions) title() string {
	if o.Title == "" {
		return o.Instance
	}
	return o.Title
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
