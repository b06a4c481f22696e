package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/aggregate"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/config"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

func newSummaryCommand() *cobra.Command {
	var (
		metric     string
		xColumn    string
		prefix     string
		resultsDir string
		average    bool
		lowerBest  bool
	)

	cmd := &cobra.Command{
		Use:   "summary [results.csv...]",
		Short: "Print final, best and worst values of a metric per run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if err := settings(cmd, cfg); err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			inputs := args
			var labels []string
			if len(inputs) == 0 {
				if prefix == "" {
					return fmt.Errorf("either inputs or --prefix is required")
				}
				if resultsDir == "" {
					resultsDir = cfg.ResultsDir
				}
				inputs = trainplot.FoldInputs(resultsDir, prefix)
				labels = append([]string(nil), trainplot.Folds...)
			}

			lc, err := trainplot.LoadMetric(trainplot.PlotOptions{
				MetricColumn:   metric,
				XColumn:        xColumn,
				IncludeAverage: average,
				RunLabels:      labels,
				Inputs:         inputs,
				Output:         "summary",
				Render:         cfg.Render,
				Logger:         log,
			})
			if err != nil {
				return err
			}

			series := append([]*models.Series(nil), lc.Runs...)
			if lc.Average != nil {
				series = append(series, lc.Average)
			}

			color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
			printSummary(cmd.OutOrStdout(), metric, aggregate.SummarizeAll(series...), lowerBest)
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "", "Metric column to summarize")
	cmd.Flags().StringVar(&xColumn, "x", trainplot.DefaultXColumn, "X axis column")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Run prefix; reads <results-dir>/<prefix>-<fold>/results.csv")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "Results root used with --prefix")
	cmd.Flags().BoolVar(&average, "average", false, "Append the mean of all runs")
	cmd.Flags().BoolVar(&lowerBest, "lower-is-better", false, "Highlight minimums instead of maximums (losses)")
	_ = cmd.MarkFlagRequired("metric")

	return cmd
}

// printSummary writes one row per run and highlights the best final value.
func printSummary(w io.Writer, metric string, rows []models.Summary, lowerBest bool) {
	header := color.New(color.Bold)
	best := color.New(color.FgGreen, color.Bold)
	worst := color.New(color.FgRed)

	header.Fprintf(w, "\n=== %s ===\n", metric)
	header.Fprintf(w, "%-24s %6s %10s %10s %8s %10s %8s\n", "RUN", "POINTS", "FINAL", "MAX", "AT", "MIN", "AT")

	bestIdx, worstIdx := rankFinals(rows, lowerBest)
	for i, r := range rows {
		line := fmt.Sprintf("%-24s %6d %10.4f %10.4f %8g %10.4f %8g",
			r.Name, r.Points, r.Final, r.Max, r.MaxX, r.Min, r.MinX)
		switch {
		case len(rows) > 1 && i == bestIdx:
			best.Fprintln(w, line)
		case len(rows) > 1 && i == worstIdx:
			worst.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// rankFinals returns the indexes of the best and worst final values among
// non-empty rows, or -1 when there are none.
func rankFinals(rows []models.Summary, lowerBest bool) (best, worst int) {
	best, worst = -1, -1
	for i, r := range rows {
		if r.Points == 0 {
			continue
		}
		if best < 0 {
			best, worst = i, i
			continue
		}
		better := r.Final > rows[best].Final
		poorer := r.Final < rows[worst].Final
		if lowerBest {
			better = r.Final < rows[best].Final
			poorer = r.Final > rows[worst].Final
		}
		if better {
			best = i
		}
		if poorer {
			worst = i
		}
	}
	return best, worst
}
