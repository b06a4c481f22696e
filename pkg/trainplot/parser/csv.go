// Package parser reads metric logs and class-label files into models.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// ErrShortRow indicates a data row with fewer cells than the header.
var ErrShortRow = errors.New("row has no cell for column")

// ReadSeries reads the xColumn and yColumn of a metric file into a series.
// Files ending in .xlsx are read from their first sheet.
// The series is named after the directory holding the file.
func ReadSeries(path, xColumn, yColumn string) (*models.Series, error) {
	if isWorkbook(path) {
		return ReadSeriesXLSX(path, "", xColumn, yColumn)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSeriesFrom(f, path, xColumn, yColumn)
}

// ReadSeriesFrom reads a series from comma-delimited text with a header row.
// path is used for naming the series and for error context only.
func ReadSeriesFrom(r io.Reader, path, xColumn, yColumn string) (*models.Series, error) {
	cols, err := readColumns(newReader(r), path, []string{xColumn, yColumn})
	if err != nil {
		return nil, err
	}
	return &models.Series{
		Name: RunName(path),
		X:    cols[0],
		Y:    cols[1],
	}, nil
}

// ReadColumns reads every requested column of a metric file.
// The result holds one sequence per column, in request order.
func ReadColumns(path string, columns ...string) ([][]float64, error) {
	if isWorkbook(path) {
		rows, err := sheetRows(path, "")
		if err != nil {
			return nil, err
		}
		return columnsFromRows(rows, path, columns)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readColumns(newReader(f), path, columns)
}

// Headers returns the trimmed header names of a metric file.
func Headers(path string) ([]string, error) {
	if isWorkbook(path) {
		return headersXLSX(path, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := newReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	return trimAll(header), nil
}

// RunName derives a run identifier from a metric file path.
// "results/b3-train2345-valid1/results.csv" yields "b3-train2345-valid1".
func RunName(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	if dir == "." || dir == string(filepath.Separator) || dir == "" {
		return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return dir
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return reader
}

// readColumns checks the header for every column before parsing any row.
func readColumns(reader *csv.Reader, path string, columns []string) ([][]float64, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, &models.ParseError{Path: path, Column: columns[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	header = trimAll(header)

	idx, err := columnIndices(path, header, columns)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(columns))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)

		for i, col := range idx {
			v, err := parseCell(record, col)
			if err != nil {
				value := ""
				if col < len(record) {
					value = record[col]
				}
				return nil, &models.FormatError{
					Path:   path,
					Column: columns[i],
					Line:   line,
					Value:  value,
					Err:    err,
				}
			}
			out[i] = append(out[i], v)
		}
	}

	return out, nil
}

// columnIndices resolves column names against a trimmed header row.
func columnIndices(path string, header, columns []string) ([]int, error) {
	idx := make([]int, len(columns))
	for i, name := range columns {
		idx[i] = -1
		for j, h := range header {
			if h == name {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, &models.ParseError{Path: path, Column: name, Headers: header}
		}
	}
	return idx, nil
}

// parseCell parses one cell as a float64.
func parseCell(record []string, col int) (float64, error) {
	if col >= len(record) {
		return 0, ErrShortRow
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return v, nil
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
