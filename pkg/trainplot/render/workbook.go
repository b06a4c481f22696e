package render

import (
	"fmt"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	"github.com/xuri/excelize/v2"
)

// DataSheet is the sheet holding the chart data in exported workbooks.
const DataSheet = "data"

// WriteWorkbook exports the data behind c into an xlsx workbook with a native
// Excel chart on the data sheet, using the same atomic write as images.
func WriteWorkbook(path string, c Chart) error {
	f, err := Workbook(c)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	return AtomicWrite(path, buf.Bytes())
}

// Workbook builds the in-memory workbook for c.
func Workbook(c Chart) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		f.Close()
		return nil, err
	}

	var err error
	switch ch := c.(type) {
	case *models.LineChart:
		err = lineWorkbook(f, ch)
	case *models.BarChart:
		err = barWorkbook(f, ch)
	default:
		err = fmt.Errorf("unsupported chart type %T", c)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// lineWorkbook writes one column per run (and the average) against the x column.
func lineWorkbook(f *excelize.File, lc *models.LineChart) error {
	if len(lc.Runs) == 0 {
		return ErrNoRuns
	}

	columns := append([]*models.Series(nil), lc.Runs...)
	if lc.Average != nil {
		columns = append(columns, lc.Average)
	}

	header := []interface{}{axisName(lc.XLabel, "x")}
	for _, s := range columns {
		header = append(header, s.Name)
	}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return err
	}

	x := lc.Runs[0].X
	for i := range x {
		row := []interface{}{x[i]}
		for _, s := range columns {
			if i < len(s.Y) {
				row = append(row, s.Y[i])
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, cell, &row); err != nil {
			return err
		}
	}

	last := len(x) + 1
	var series []excelize.ChartSeries
	for i := range columns {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", DataSheet, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", DataSheet, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, col, col, last),
		})
	}

	anchor, err := excelize.CoordinatesToCellName(len(columns)+3, 2)
	if err != nil {
		return err
	}
	return f.AddChart(DataSheet, anchor, &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: lc.Title}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: lc.XLabel}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: lc.YLabel}}},
		Legend: excelize.ChartLegend{Position: "right"},
	})
}

// barWorkbook writes one row per class with train and valid counts.
func barWorkbook(f *excelize.File, bc *models.BarChart) error {
	header := []interface{}{axisName(bc.XLabel, "Class"), TrainLegend, ValidLegend}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return err
	}

	labels := classLabels(bc.Data)
	if len(labels) == 0 {
		return ErrNoBars
	}

	for i, label := range labels {
		row := []interface{}{label, bc.Data.Train.Count(label), bc.Data.Valid.Count(label)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, cell, &row); err != nil {
			return err
		}
	}

	last := len(labels) + 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", DataSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", DataSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", DataSheet, last),
				Fill:       excelize.Fill{Type: "pattern", Color: []string{"008000"}, Pattern: 1},
			},
			{
				Name:       fmt.Sprintf("%s!$C$1", DataSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", DataSheet, last),
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", DataSheet, last),
				Fill:       excelize.Fill{Type: "pattern", Color: []string{"FF0000"}, Pattern: 1},
			},
		},
		Title:  []excelize.RichTextRun{{Text: bc.Title}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: bc.XLabel}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: bc.YLabel}}},
		Legend: excelize.ChartLegend{Position: "top"},
	}
	if bc.YMax > 0 {
		yMax := bc.YMax
		chart.YAxis.Maximum = &yMax
	}
	return f.AddChart(DataSheet, "E2", chart)
}

func axisName(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
