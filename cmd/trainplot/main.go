// Package main provides the CLI entry point for trainplot.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/config"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel  string
	fontSize  float64
	format    string
	workbooks bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trainplot",
		Short: "Render training metric charts for cross-validation runs",
		Long: `trainplot reads the results.csv metric logs and label files of a
k-fold training experiment and renders line and bar charts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().Float64Var(&fontSize, "font-size", 0, "Base font size (default: 14)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Image format: png or svg (default: png)")
	rootCmd.PersistentFlags().BoolVar(&workbooks, "xlsx", false, "Also export chart data as an xlsx workbook")

	rootCmd.AddCommand(
		newLineCommand(),
		newBarCommand(),
		newRunCommand(),
		newSummaryCommand(),
		newColumnsCommand(),
		newInspectCommand(),
	)

	return rootCmd
}

// settings merges the global flags that were set into cfg.
func settings(cmd *cobra.Command, cfg *config.Config) error {
	var (
		level *string
		size  *float64
		fmtp  *string
		book  *bool
	)
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level = &logLevel
	}
	if flags.Changed("font-size") {
		size = &fontSize
	}
	if flags.Changed("format") {
		f, err := render.ParseFormat(format)
		if err != nil {
			return err
		}
		s := string(f)
		fmtp = &s
	}
	if flags.Changed("xlsx") {
		book = &workbooks
	}
	cfg.MergeWithFlags(level, size, fmtp, book)
	return cfg.Validate()
}

// newLogger builds a console logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.DisableStacktrace = true
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
