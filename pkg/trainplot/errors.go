package trainplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoInputs indicates a metric chart without input files.
var ErrNoInputs = errors.New("no input files")

// Stages of a chart-generation call, reported in PlotError.
const (
	StageValidate  = "validate"
	StageRead      = "read"
	StageAggregate = "aggregate"
	StageRender    = "render"
	StageWrite     = "write"
)

// PlotError represents an error that aborted a chart-generation call.
type PlotError struct {
	Chart string
	Stage string
	Err   error
}

func (e *PlotError) Error() string {
	return fmt.Sprintf("chart %q failed during %s: %v", e.Chart, e.Stage, e.Err)
}

func (e *PlotError) Unwrap() error {
	return e.Err
}

// NewPlotError creates a new PlotError.
func NewPlotError(chart, stage string, err error) *PlotError {
	return &PlotError{
		Chart: chart,
		Stage: stage,
		Err:   err,
	}
}
