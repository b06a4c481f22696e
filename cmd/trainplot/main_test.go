package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

const resultsCSV = `               epoch,      train/obj_loss,      metrics/recall
                   0,                0.09,                 0.1
                   1,                0.07,                 0.3
                   2,                0.05,                 0.4
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeRun(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(resultsCSV), 0644))
	return path
}

func TestMetricFileName(t *testing.T) {
	tests := []struct {
		metric  string
		average bool
		want    string
	}{
		{"metrics/recall", false, "plot_epoch_recall"},
		{"metrics/precision", true, "plot_epoch_precision_avg"},
		{"val loss", false, "plot_epoch_val_loss"},
	}
	for _, tt := range tests {
		if got := metricFileName(tt.metric, tt.average); got != tt.want {
			t.Errorf("metricFileName(%q, %v) = %q, want %q", tt.metric, tt.average, got, tt.want)
		}
	}
}

func TestColumnsCommand(t *testing.T) {
	path := writeRun(t, t.TempDir())

	out, err := execute(t, "columns", path)
	require.NoError(t, err)
	assert.Equal(t, "epoch\ntrain/obj_loss\nmetrics/recall\n", out)
}

func TestLineCommand(t *testing.T) {
	root := t.TempDir()
	a := writeRun(t, filepath.Join(root, "run-a"))
	b := writeRun(t, filepath.Join(root, "run-b"))
	out := filepath.Join(root, "out", "recall.svg")

	stdout, err := execute(t, "line", "--metric", "metrics/recall", "--average",
		"--format", "svg", "--xlsx", "-o", out, a, b)
	require.NoError(t, err)
	assert.Equal(t, out+"\n", stdout)
	assert.FileExists(t, out)
	assert.FileExists(t, filepath.Join(root, "out", "recall.xlsx"))
}

func TestLineCommandRequiresMetric(t *testing.T) {
	path := writeRun(t, t.TempDir())
	_, err := execute(t, "line", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metric")
}

func TestLineCommandBadFormat(t *testing.T) {
	path := writeRun(t, t.TempDir())
	_, err := execute(t, "line", "--metric", "metrics/recall", "--format", "gif", path)
	require.Error(t, err)
}

func TestRunCommandMissingInputs(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "run", "--config", filepath.Join(root, "none.yaml"),
		"--results-dir", root, "--output-dir", filepath.Join(root, "common"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 of 5 charts written")
}

func TestSummaryCommand(t *testing.T) {
	root := t.TempDir()
	a := writeRun(t, filepath.Join(root, "run-a"))

	out, err := execute(t, "summary", "--metric", "metrics/recall", a)
	require.NoError(t, err)
	assert.Contains(t, out, "=== metrics/recall ===")
	assert.Contains(t, out, "run-a")
	assert.Contains(t, out, "0.4000")
}

func TestPrintSummaryHighlightsBest(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	rows := []models.Summary{
		{Name: "a", Points: 3, Final: 0.2, Max: 0.3, Min: 0.1},
		{Name: "b", Points: 3, Final: 0.5, Max: 0.5, Min: 0.1},
	}
	var buf bytes.Buffer
	printSummary(&buf, "metrics/recall", rows, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "a "))
	assert.True(t, strings.HasPrefix(lines[3], "b "))
}

func TestRankFinals(t *testing.T) {
	rows := []models.Summary{
		{Name: "empty"},
		{Name: "a", Points: 2, Final: 0.3},
		{Name: "b", Points: 2, Final: 0.9},
		{Name: "c", Points: 2, Final: 0.1},
	}

	best, worst := rankFinals(rows, false)
	assert.Equal(t, 2, best)
	assert.Equal(t, 3, worst)

	best, worst = rankFinals(rows, true)
	assert.Equal(t, 3, best)
	assert.Equal(t, 2, worst)

	best, worst = rankFinals(rows[:1], false)
	assert.Equal(t, -1, best)
	assert.Equal(t, -1, worst)
}

func TestInspectCommand(t *testing.T) {
	root := t.TempDir()
	a := writeRun(t, filepath.Join(root, "run-a"))
	out := filepath.Join(root, "recall.png")
	_, err := execute(t, "line", "--metric", "metrics/recall", "--title", "Recall curve", "--xlsx", "-o", out, a)
	require.NoError(t, err)

	stdout, err := execute(t, "inspect", filepath.Join(root, "recall.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, `"kind":"Line"`)
	assert.Contains(t, stdout, `"title":"Recall curve"`)
}

func TestBarCommand(t *testing.T) {
	root := t.TempDir()
	for dir, content := range map[string]string{
		filepath.Join(root, "bar", "train1234-valid5", "train"): "0 0.5 0.5 0.1 0.1\n1 0.5 0.5 0.1 0.1\n0 0.1 0.1 0.1 0.1\n",
		filepath.Join(root, "bar", "train1234-valid5", "valid"): "1 0.5 0.5 0.1 0.1\n",
	} {
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "img.txt"), []byte(content), 0644))
	}
	out := filepath.Join(root, "common", "bar.png")

	stdout, err := execute(t, "bar", "--results-dir", root, "--instance", "train1234-valid5", "--y-max", "10", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "train: 3 instances")
	assert.Contains(t, stdout, "valid: 1 instances")
	assert.FileExists(t, out)
}
