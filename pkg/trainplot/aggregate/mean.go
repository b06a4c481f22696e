// Package aggregate combines parsed series and label codes into chart data.
package aggregate

import (
	"errors"
	"math"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// AxisTolerance is the largest x difference treated as the same index value.
const AxisTolerance = 1e-9

// ErrNoSeries indicates an aggregation over zero series.
var ErrNoSeries = errors.New("no series to aggregate")

// Mean returns the element-wise arithmetic mean of series.
// The x axis is copied from the first series. Every series must have the
// same length and the same x values as the first one.
func Mean(name string, series ...*models.Series) (*models.Series, error) {
	if len(series) == 0 || series[0] == nil {
		return nil, ErrNoSeries
	}

	first := series[0]
	if err := CheckAligned(series...); err != nil {
		return nil, err
	}

	out := &models.Series{
		Name: name,
		X:    append([]float64(nil), first.X...),
		Y:    make([]float64, len(first.Y)),
	}
	if name == "" {
		out.Name = first.Name
	}

	n := float64(len(series))
	for i := range out.Y {
		sum := 0.0
		for _, s := range series {
			sum += s.Y[i]
		}
		out.Y[i] = sum / n
	}

	return out, nil
}

// CheckAligned verifies that all series share the first series' length and x axis.
func CheckAligned(series ...*models.Series) error {
	if len(series) == 0 || series[0] == nil {
		return ErrNoSeries
	}

	first := series[0]
	if len(first.X) != len(first.Y) {
		return &models.LengthMismatchError{Series: first.Name, Want: len(first.Y), Got: len(first.X)}
	}

	for _, s := range series[1:] {
		if s == nil {
			return ErrNoSeries
		}
		if len(s.Y) != len(first.Y) {
			return &models.LengthMismatchError{Series: s.Name, Want: len(first.Y), Got: len(s.Y)}
		}
		if len(s.X) != len(first.X) {
			return &models.LengthMismatchError{Series: s.Name, Want: len(first.X), Got: len(s.X)}
		}
		for i := range first.X {
			if math.Abs(s.X[i]-first.X[i]) > AxisTolerance {
				return &models.AxisMismatchError{Series: s.Name, Index: i, Want: first.X[i], Got: s.X[i]}
			}
		}
	}

	return nil
}
