package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trainplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, filepath.Join("results", "common"), cfg.OutputDir)
	assert.Equal(t, 14.0, cfg.Render.FontSize)
	assert.Equal(t, render.FormatPNG, cfg.Render.Format)
	assert.NoError(t, cfg.Validate())
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/trainplot.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
results_dir: runs
output_dir: charts
workbooks: true
render:
  font_size: 12
  format: svg
line_charts:
  - name: recall_avg
    prefix: b3
    metric: metrics/recall
    title: Recall curve
    y_label: Recall
    average: true
  - name: custom
    inputs: [a/results.csv, b/results.csv]
    labels: [first, second]
    metric: metrics/precision
bar_charts:
  - instance: train1234-valid5
    y_max: 500
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "runs", cfg.ResultsDir)
	assert.Equal(t, 12.0, cfg.Render.FontSize)
	assert.Equal(t, 640, cfg.Render.Width, "unset render fields keep defaults")
	assert.Equal(t, render.FormatSVG, cfg.Render.Format)
	require.Len(t, cfg.LineCharts, 2)
	require.Len(t, cfg.BarCharts, 1)

	jobs := cfg.Jobs()
	require.Len(t, jobs.Lines, 2)
	require.Len(t, jobs.Bars, 1)

	recall := jobs.Lines[0]
	assert.True(t, recall.IncludeAverage)
	assert.Equal(t, filepath.Join("charts", "recall_avg.svg"), recall.Output)
	assert.Equal(t, filepath.Join("charts", "recall_avg.xlsx"), recall.Workbook)
	assert.Equal(t, filepath.Join("runs", "b3-train2345-valid1", "results.csv"), recall.Inputs[0])
	assert.Equal(t, "train2345-valid1", recall.RunLabels[0])

	custom := jobs.Lines[1]
	assert.Equal(t, []string{"a/results.csv", "b/results.csv"}, custom.Inputs)
	assert.Equal(t, []string{"first", "second"}, custom.RunLabels)

	bar := jobs.Bars[0]
	assert.Equal(t, filepath.Join("charts", "bar-train1234-valid5.svg"), bar.Output)
	assert.Equal(t, filepath.Join("runs", "bar", "train1234-valid5", "valid"), bar.ValidDir)
	assert.Equal(t, 500.0, bar.YMax)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "line_charts: [\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"log level", "log_level: verbose\n"},
		{"format", "render: {format: gif}\n"},
		{"missing metric", "line_charts: [{name: a, prefix: b3}]\n"},
		{"missing source", "line_charts: [{name: a, metric: m}]\n"},
		{"missing name", "line_charts: [{metric: m, prefix: b3}]\n"},
		{"duplicate", "line_charts: [{name: a, metric: m, prefix: b}, {name: a, metric: m, prefix: b3}]\n"},
		{"bar source", "bar_charts: [{train_dir: x}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestJobsDefaultSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workbooks = true

	jobs := cfg.Jobs()
	require.Equal(t, 5, jobs.Len())
	assert.Equal(t, filepath.Join("results", "common", "plot_epoch_precision.xlsx"), jobs.Lines[0].Workbook)
	assert.Equal(t, filepath.Join("results", "common", "bar-train2345-valid1.xlsx"), jobs.Bars[0].Workbook)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "warn"
	size := 18.0

	cfg.MergeWithFlags(&level, &size, nil, nil)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 18.0, cfg.Render.FontSize)
	assert.Equal(t, render.FormatPNG, cfg.Render.Format)
	assert.False(t, cfg.Workbooks)
}
