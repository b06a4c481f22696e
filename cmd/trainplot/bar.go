package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/config"
)

func newBarCommand() *cobra.Command {
	var (
		opts       trainplot.BarOptions
		resultsDir string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Plot class instance counts of a train/valid split",
		Args:  cobra.NoArgs,
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

			if resultsDir == "" {
				resultsDir = cfg.ResultsDir
			}
			train, valid := trainplot.FoldLabelDirs(resultsDir, opts.Instance)
			if opts.TrainDir == "" {
				opts.TrainDir = train
			}
			if opts.ValidDir == "" {
				opts.ValidDir = valid
			}
			if outputPath == "" {
				outputPath = filepath.Join(cfg.OutputDir, "bar-"+opts.Instance+cfg.Render.Ext())
			}

			opts.Output = outputPath
			opts.Render = cfg.Render
			opts.Logger = log
			if cfg.Workbooks {
				opts.Workbook = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".xlsx"
			}

			tv, err := trainplot.PlotClassBars(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, g := range []struct {
				name  string
				total int
			}{{tv.Train.Group, tv.Train.Total()}, {tv.Valid.Group, tv.Valid.Total()}} {
				fmt.Fprintf(out, "%s: %d instances\n", g.name, g.total)
			}
			fmt.Fprintln(out, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Instance, "instance", trainplot.Folds[0], "Split name, e.g. train2345-valid1")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "Results root holding bar/<instance>/{train,valid}")
	cmd.Flags().StringVar(&opts.TrainDir, "train-dir", "", "Training label directory (overrides --results-dir)")
	cmd.Flags().StringVar(&opts.ValidDir, "valid-dir", "", "Validation label directory (overrides --results-dir)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title (default: instance)")
	cmd.Flags().Float64Var(&opts.YMax, "y-max", 0, "Upper Y axis limit (0 = automatic)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image path")

	return cmd
}
