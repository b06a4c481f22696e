// Package config loads chart job definitions from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
	"gopkg.in/yaml.v3"
)

// LineChart configures one metric chart over the folds of a run prefix.
type LineChart struct {
	// Name is the output file name without extension.
	Name string `yaml:"name"`
	// Prefix selects run directories <results_dir>/<prefix>-<fold>.
	Prefix string `yaml:"prefix"`
	// Inputs lists metric files explicitly; overrides Prefix when set.
	Inputs []string `yaml:"inputs"`
	// Labels overrides the legend name of each run. Defaults to the fold names with Prefix.
	Labels []string `yaml:"labels"`
	// Metric is the plotted column header.
	Metric string `yaml:"metric"`
	// X is the x axis column header (default "epoch").
	X string `yaml:"x"`
	// Title is the chart title.
	Title string `yaml:"title"`
	// XLabel is the X-axis title (default "Epoch").
	XLabel string `yaml:"x_label"`
	// YLabel is the Y-axis title.
	YLabel string `yaml:"y_label"`
	// LegendTitle heads the legend when no average is drawn.
	LegendTitle string `yaml:"legend_title"`
	// Average adds the mean of all runs.
	Average bool `yaml:"average"`
}

// BarChart configures the class distribution chart of one split.
type BarChart struct {
	// Name is the output file name without extension (default "bar-<instance>").
	Name string `yaml:"name"`
	// Instance is the split name, e.g. "train2345-valid1".
	Instance string `yaml:"instance"`
	// TrainDir overrides <results_dir>/bar/<instance>/train.
	TrainDir string `yaml:"train_dir"`
	// ValidDir overrides <results_dir>/bar/<instance>/valid.
	ValidDir string `yaml:"valid_dir"`
	// Title is the chart title (default Instance).
	Title string `yaml:"title"`
	// YMax caps the Y axis when positive.
	YMax float64 `yaml:"y_max"`
}

// Config represents a trainplot job file.
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// ResultsDir is the root holding the run directories.
	ResultsDir string `yaml:"results_dir"`
	// OutputDir is where images are written.
	OutputDir string `yaml:"output_dir"`
	// Workbooks also exports every chart as an xlsx workbook.
	Workbooks bool `yaml:"workbooks"`
	// Render holds the image settings.
	Render render.Config `yaml:"render"`
	// LineCharts lists the metric charts. When both chart lists are empty the
	// default chart set is used.
	LineCharts []LineChart `yaml:"line_charts"`
	// BarCharts lists the class distribution charts.
	BarCharts []BarChart `yaml:"bar_charts"`
}

// DefaultConfig returns a Config with default values and no explicit charts.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		ResultsDir: "results",
		OutputDir:  filepath.Join("results", "common"),
		Render:     render.DefaultConfig(),
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.ResultsDir != "" {
		cfg.ResultsDir = fileCfg.ResultsDir
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.Workbooks {
		cfg.Workbooks = true
	}
	cfg.Render = mergeRender(cfg.Render, fileCfg.Render)
	cfg.LineCharts = fileCfg.LineCharts
	cfg.BarCharts = fileCfg.BarCharts

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// mergeRender applies the non-zero fields of override.
func mergeRender(base, override render.Config) render.Config {
	if override.FontSize != 0 {
		base.FontSize = override.FontSize
	}
	if override.Width != 0 {
		base.Width = override.Width
	}
	if override.Height != 0 {
		base.Height = override.Height
	}
	if override.DPI != 0 {
		base.DPI = override.DPI
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	return base
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, fontSize *float64, format *string, workbooks *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if fontSize != nil {
		c.Render.FontSize = *fontSize
	}
	if format != nil {
		c.Render.Format = render.Format(*format)
	}
	if workbooks != nil {
		c.Workbooks = *workbooks
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}

	names := make(map[string]bool)
	for i, lc := range c.LineCharts {
		if lc.Name == "" {
			return fmt.Errorf("line_charts[%d]: name is required", i)
		}
		if lc.Metric == "" {
			return fmt.Errorf("line_charts[%d] %q: metric is required", i, lc.Name)
		}
		if lc.Prefix == "" && len(lc.Inputs) == 0 {
			return fmt.Errorf("line_charts[%d] %q: prefix or inputs is required", i, lc.Name)
		}
		if names[lc.Name] {
			return fmt.Errorf("duplicate chart name %q", lc.Name)
		}
		names[lc.Name] = true
	}
	for i, bc := range c.BarCharts {
		if bc.Instance == "" && (bc.TrainDir == "" || bc.ValidDir == "") {
			return fmt.Errorf("bar_charts[%d]: instance or train_dir and valid_dir is required", i)
		}
		name := bc.name()
		if names[name] {
			return fmt.Errorf("duplicate chart name %q", name)
		}
		names[name] = true
	}
	return nil
}

// Jobs converts the configuration into chart options. Without explicit charts
// the default chart set is returned.
func (c *Config) Jobs() trainplot.Jobs {
	if len(c.LineCharts) == 0 && len(c.BarCharts) == 0 {
		jobs := trainplot.DefaultJobs(c.ResultsDir, c.OutputDir, c.Render)
		if c.Workbooks {
			for i := range jobs.Lines {
				jobs.Lines[i].Workbook = c.workbookPath(chartBase(jobs.Lines[i].Output))
			}
			for i := range jobs.Bars {
				jobs.Bars[i].Workbook = c.workbookPath(chartBase(jobs.Bars[i].Output))
			}
		}
		return jobs
	}

	var jobs trainplot.Jobs
	for _, lc := range c.LineCharts {
		opts := trainplot.PlotOptions{
			MetricColumn:   lc.Metric,
			XColumn:        lc.X,
			Title:          lc.Title,
			XLabel:         lc.XLabel,
			YLabel:         lc.YLabel,
			LegendTitle:    lc.LegendTitle,
			IncludeAverage: lc.Average,
			RunLabels:      lc.Labels,
			Inputs:         lc.Inputs,
			Output:         c.imagePath(lc.Name),
			Render:         c.Render,
		}
		if len(opts.Inputs) == 0 {
			opts.Inputs = trainplot.FoldInputs(c.ResultsDir, lc.Prefix)
			if opts.RunLabels == nil {
				opts.RunLabels = append([]string(nil), trainplot.Folds...)
			}
		}
		if c.Workbooks {
			opts.Workbook = c.workbookPath(lc.Name)
		}
		jobs.Lines = append(jobs.Lines, opts)
	}

	for _, bc := range c.BarCharts {
		train, valid := bc.TrainDir, bc.ValidDir
		if train == "" || valid == "" {
			defTrain, defValid := trainplot.FoldLabelDirs(c.ResultsDir, bc.Instance)
			if train == "" {
				train = defTrain
			}
			if valid == "" {
				valid = defValid
			}
		}
		opts := trainplot.BarOptions{
			Instance: bc.Instance,
			TrainDir: train,
			ValidDir: valid,
			Title:    bc.Title,
			YMax:     bc.YMax,
			Output:   c.imagePath(bc.name()),
			Render:   c.Render,
		}
		if c.Workbooks {
			opts.Workbook = c.workbookPath(bc.name())
		}
		jobs.Bars = append(jobs.Bars, opts)
	}
	return jobs
}

func (b BarChart) name() string {
	if b.Name != "" {
		return b.Name
	}
	return "bar-" + b.Instance
}

func (c *Config) imagePath(name string) string {
	return filepath.Join(c.OutputDir, name+c.Render.Ext())
}

func (c *Config) workbookPath(name string) string {
	return filepath.Join(c.OutputDir, name+".xlsx")
}

func chartBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
