package trainplot

import (
	"go.uber.org/zap"
)

// Run renders every chart of the set in order and stops at the first failure.
// Charts written before the failure are kept. log overrides the per-chart
// loggers when non-nil.
func Run(jobs Jobs, log *zap.Logger) (int, error) {
	done := 0
	for _, opts := range jobs.Lines {
		if log != nil {
			opts.Logger = log
		}
		if _, err := PlotMetric(opts); err != nil {
			return done, err
		}
		done++
	}
	for _, opts := range jobs.Bars {
		if log != nil {
			opts.Logger = log
		}
		if _, err := PlotClassBars(opts); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}
