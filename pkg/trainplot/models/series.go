// Package models defines data structures for training metric charts.
package models

// Series represents an ordered numeric sequence sharing an index axis with its peers.
type Series struct {
	// Name is the run or fold identifier (e.g., "train2345-valid1").
	Name string `json:"name"`
	// X holds the shared index axis values (e.g., epoch numbers).
	X []float64 `json:"x"`
	// Y holds the metric values, one per X entry.
	Y []float64 `json:"y"`
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Y)
}

// Clone returns a deep copy of the series under a new name.
// An empty name keeps the original one.
func (s *Series) Clone(name string) *Series {
	if name == "" {
		name = s.Name
	}
	return &Series{
		Name: name,
		X:    append([]float64(nil), s.X...),
		Y:    append([]float64(nil), s.Y...),
	}
}

// Summary holds headline numbers for one series.
type Summary struct {
	// Name is the series name.
	Name string `json:"name"`
	// Points is the number of points in the series.
	Points int `json:"points"`
	// Final is the last Y value.
	Final float64 `json:"final"`
	// Max is the largest Y value.
	Max float64 `json:"max"`
	// MaxX is the X value at which Max was first reached.
	MaxX float64 `json:"max_x"`
	// Min is the smallest Y value.
	Min float64 `json:"min"`
	// MinX is the X value at which Min was first reached.
	MinX float64 `json:"min_x"`
}
