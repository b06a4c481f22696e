package models

import "fmt"

// FormatError indicates a cell that is not a number, or a label line whose
// leading character is not a digit.
type FormatError struct {
	Path   string
	Column string // empty for label files
	Line   int    // 1-based line number in the file
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("format error in %s line %d: %q: %v", e.Path, e.Line, e.Value, e.Err)
	}
	return fmt.Sprintf("format error in %s line %d column %q: %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError indicates a required column is absent from the header row.
type ParseError struct {
	Path    string
	Column  string
	Headers []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: column %q not found in header %q", e.Path, e.Column, e.Headers)
}

// UnknownCategoryError indicates a category code outside the label mapping.
type UnknownCategoryError struct {
	Code int
	Path string
}

func (e *UnknownCategoryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown category code %d", e.Code)
	}
	return fmt.Sprintf("unknown category code %d in %s", e.Code, e.Path)
}

// LengthMismatchError indicates series of unequal length inside one aggregation group.
type LengthMismatchError struct {
	Series string
	Want   int
	Got    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("series %q has %d points, want %d", e.Series, e.Got, e.Want)
}

// AxisMismatchError indicates series whose x values differ at some index.
type AxisMismatchError struct {
	Series string
	Index  int
	Want   float64
	Got    float64
}

func (e *AxisMismatchError) Error() string {
	return fmt.Sprintf("series %q has x=%g at index %d, want %g", e.Series, e.Got, e.Index, e.Want)
}
