package models

// ChartType identifies the kind of chart to render.
type ChartType string

const (
	// ChartLine draws one line per run, optionally with an average overlay.
	ChartLine ChartType = "line"
	// ChartBar draws per-class bars for the train and valid groups.
	ChartBar ChartType = "bar"
)

// LineChart describes a metric plotted across several runs.
type LineChart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XLabel is the X-axis title.
	XLabel string `json:"x_label"`
	// YLabel is the Y-axis title.
	YLabel string `json:"y_label"`
	// LegendTitle is shown above the run entries when there is no average.
	LegendTitle string `json:"legend_title,omitempty"`
	// Runs holds one series per run, in legend order.
	Runs []*Series `json:"runs"`
	// Average is the element-wise mean of Runs (nil when not requested).
	Average *Series `json:"average,omitempty"`
}

// Type implements the render chart contract.
func (c *LineChart) Type() ChartType { return ChartLine }

// BarChart describes per-class instance counts for a train/valid split.
type BarChart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XLabel is the X-axis title.
	XLabel string `json:"x_label"`
	// YLabel is the Y-axis title.
	YLabel string `json:"y_label"`
	// YMax caps the Y axis when positive.
	YMax float64 `json:"y_max,omitempty"`
	// Data holds the counts for both groups.
	Data TrainValid `json:"data"`
}

// Type implements the render chart contract.
func (c *BarChart) Type() ChartType { return ChartBar }

// ChartInfo describes a native chart found in an xlsx workbook.
type ChartInfo struct {
	// Part is the chart part inside the package (e.g., "xl/charts/chart1.xml").
	Part string `json:"part"`
	// Kind is the chart kind ("Line", "Bar", ...).
	Kind string `json:"kind"`
	// Title is the chart title text.
	Title string `json:"title,omitempty"`
	// XTitle is the category axis title.
	XTitle string `json:"x_title,omitempty"`
	// YTitle is the value axis title.
	YTitle string `json:"y_title,omitempty"`
	// YMax is the fixed upper bound of the value axis, if any.
	YMax *float64 `json:"y_max,omitempty"`
	// Series lists the chart series.
	Series []ChartSeries `json:"series"`
}

// ChartSeries holds the cell references of one chart series.
type ChartSeries struct {
	// Name is the cached series name, when the workbook stores one.
	Name string `json:"name,omitempty"`
	// NameRange is the series name reference (e.g., "data!$B$1").
	NameRange string `json:"name_range,omitempty"`
	// XRange is the category reference.
	XRange string `json:"x_range,omitempty"`
	// YRange is the value reference.
	YRange string `json:"y_range,omitempty"`
}
