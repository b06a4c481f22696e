package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadWorkbookCharts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Epoch", "run-a", "run-b"},
		{0, 0.1, 0.2},
		{1, 0.3, 0.4},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		values := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	require.NoError(t, f.AddChart("Sheet1", "E2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$B$1", Categories: "Sheet1!$A$2:$A$3", Values: "Sheet1!$B$2:$B$3"},
			{Name: "Sheet1!$C$1", Categories: "Sheet1!$A$2:$A$3", Values: "Sheet1!$C$2:$C$3"},
		},
		Title: []excelize.RichTextRun{{Text: "Recall curve"}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Recall"}}},
	}))

	yMax := 13000.0
	require.NoError(t, f.AddChart("Sheet1", "E20", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$B$1", Categories: "Sheet1!$A$2:$A$3", Values: "Sheet1!$B$2:$B$3"},
		},
		Title: []excelize.RichTextRun{{Text: "train2345-valid1"}},
		YAxis: excelize.ChartAxis{Maximum: &yMax},
	}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	charts, err := ReadWorkbookCharts(path)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	line := charts[0]
	assert.Equal(t, "xl/charts/chart1.xml", line.Part)
	assert.Equal(t, "Line", line.Kind)
	assert.Equal(t, "Recall curve", line.Title)
	assert.Equal(t, "Recall", line.YTitle)
	require.Len(t, line.Series, 2)
	assert.Equal(t, "Sheet1!$C$1", line.Series[1].NameRange)
	assert.Equal(t, "Sheet1!$C$2:$C$3", line.Series[1].YRange)
	assert.Equal(t, "Sheet1!$A$2:$A$3", line.Series[1].XRange)

	bar := charts[1]
	assert.Equal(t, "Bar", bar.Kind)
	assert.Equal(t, "train2345-valid1", bar.Title)
	require.NotNil(t, bar.YMax)
	assert.Equal(t, 13000.0, *bar.YMax)
}

func TestReadWorkbookChartsNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	saveWorkbook(t, path, "A1", [][]interface{}{{"epoch"}, {0}})

	charts, err := ReadWorkbookCharts(path)
	require.NoError(t, err)
	assert.Empty(t, charts)
}

func TestReadWorkbookChartsNotZip(t *testing.T) {
	path := writeFile(t, t.TempDir(), "results.csv", "epoch\n0\n")
	_, err := ReadWorkbookCharts(path)
	assert.Error(t, err)
}

func TestChartIndexOrder(t *testing.T) {
	assert.Less(t, chartIndex("xl/charts/chart2.xml"), chartIndex("xl/charts/chart10.xml"))
	assert.True(t, isChartPart("xl/charts/chart1.xml"))
	assert.False(t, isChartPart("xl/charts/_rels/chart1.xml.rels"))
	assert.False(t, isChartPart("xl/drawings/drawing1.xml"))
}
