package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/config"
	"go.uber.org/zap"
)

func newRunCommand() *cobra.Command {
	var (
		configPath string
		resultsDir string
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render every configured chart (or the default chart set)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if resultsDir != "" {
				cfg.ResultsDir = resultsDir
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			if err := settings(cmd, cfg); err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			jobs := cfg.Jobs()
			log.Info("Rendering charts", zap.Int("charts", jobs.Len()), zap.String("output_dir", cfg.OutputDir))

			done, err := trainplot.Run(jobs, log)
			if err != nil {
				return fmt.Errorf("%d of %d charts written: %w", done, jobs.Len(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d charts written to %s\n", done, cfg.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "trainplot.yaml", "Job file (missing file = default chart set)")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "Override results_dir")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Override output_dir")

	return cmd
}
