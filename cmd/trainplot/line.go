package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/config"
)

func newLineCommand() *cobra.Command {
	var (
		opts       trainplot.PlotOptions
		labels     []string
		outputPath string
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:   "line [results.csv...]",
		Short: "Plot one metric column across several runs",
		Args:  cobra.MinimumNArgs(1),
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

			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			if outputPath == "" {
				outputPath = filepath.Join(outputDir, metricFileName(opts.MetricColumn, opts.IncludeAverage)+cfg.Render.Ext())
			}

			opts.Inputs = args
			opts.Output = outputPath
			opts.Render = cfg.Render
			opts.Logger = log
			if len(labels) > 0 {
				opts.RunLabels = labels
			}
			if cfg.Workbooks {
				opts.Workbook = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".xlsx"
			}

			res, err := trainplot.PlotMetric(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.MetricColumn, "metric", "", "Metric column to plot (e.g. metrics/recall)")
	cmd.Flags().StringVar(&opts.XColumn, "x", trainplot.DefaultXColumn, "X axis column")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")
	cmd.Flags().StringVar(&opts.XLabel, "x-label", "Epoch", "X axis title")
	cmd.Flags().StringVar(&opts.YLabel, "y-label", "", "Y axis title")
	cmd.Flags().StringVar(&opts.LegendTitle, "legend-title", "", "Legend heading when no average is drawn")
	cmd.Flags().BoolVar(&opts.IncludeAverage, "average", false, "Overlay the mean of all runs")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "Legend name per input, in order (repeatable)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image path")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory when --output is not set")
	_ = cmd.MarkFlagRequired("metric")

	return cmd
}

// metricFileName derives an image name from a metric column:
// "metrics/recall" becomes "plot_epoch_recall" (plus "_avg" with an average).
func metricFileName(metric string, average bool) string {
	name := metric
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = "plot_epoch_" + strings.ReplaceAll(name, " ", "_")
	if average {
		name += "_avg"
	}
	return name
}
