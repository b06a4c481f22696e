package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	"github.com/xuri/excelize/v2"
)

// ReadSeriesXLSX reads a series from a workbook sheet laid out like a metric CSV:
// a header row followed by one row per epoch. The table may start anywhere on
// the sheet; its top-left corner is the first non-empty cell. An empty sheet
// name selects the first sheet.
func ReadSeriesXLSX(path, sheet, xColumn, yColumn string) (*models.Series, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}

	cols, err := columnsFromRows(rows, path, []string{xColumn, yColumn})
	if err != nil {
		return nil, err
	}

	return &models.Series{
		Name: RunName(path),
		X:    cols[0],
		Y:    cols[1],
	}, nil
}

// headersXLSX returns the header row of a workbook sheet.
func headersXLSX(path, sheet string) ([]string, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return trimAll(rows[0]), nil
}

// sheetRows returns the non-empty table region of a sheet.
func sheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	return cropRows(rows, findDataBounds(rows)), nil
}

// columnsFromRows applies the CSV column rules to already split rows.
// Row numbers in errors are relative to the start of the table.
func columnsFromRows(rows [][]string, path string, columns []string) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, &models.ParseError{Path: path, Column: columns[0]}
	}

	header := trimAll(rows[0])
	idx, err := columnIndices(path, header, columns)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(columns))
	for r, record := range rows[1:] {
		if isBlank(record) {
			continue
		}
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
					Line:   r + 2,
					Value:  value,
					Err:    err,
				}
			}
			out[i] = append(out[i], v)
		}
	}

	return out, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
