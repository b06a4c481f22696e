package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// chartKinds maps OOXML chart element tags to chart kinds.
var chartKinds = map[string]string{
	"lineChart":    "Line",
	"line3DChart":  "3DLine",
	"barChart":     "Bar",
	"bar3DChart":   "3DBar",
	"areaChart":    "Area",
	"scatterChart": "XYScatter",
}

// ReadWorkbookCharts lists the native charts of an xlsx workbook in part order.
func ReadWorkbookCharts(xlsxPath string) ([]models.ChartInfo, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer r.Close()

	var parts []*zip.File
	for _, f := range r.File {
		if isChartPart(f.Name) {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return chartIndex(parts[i].Name) < chartIndex(parts[j].Name) })

	charts := make([]models.ChartInfo, 0, len(parts))
	for _, f := range parts {
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		info := parseChartXML(data)
		info.Part = f.Name
		charts = append(charts, info)
	}
	return charts, nil
}

func isChartPart(name string) bool {
	dir, file := path.Split(name)
	return dir == "xl/charts/" && strings.HasPrefix(file, "chart") && strings.HasSuffix(file, ".xml")
}

// chartIndex orders chart2.xml before chart10.xml.
func chartIndex(name string) int {
	base := strings.TrimSuffix(path.Base(name), ".xml")
	n, err := strconv.Atoi(strings.TrimPrefix(base, "chart"))
	if err != nil {
		return -1
	}
	return n
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseChartXML walks a chart part. The chart title lives directly under
// c:chart; axis titles live under c:catAx and c:valAx.
func parseChartXML(data []byte) models.ChartInfo {
	info := models.ChartInfo{Kind: "unknown"}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "title":
			if info.Title == "" {
				info.Title = readTitle(decoder)
			}
		case "catAx", "dateAx":
			info.XTitle, _ = readAxis(decoder)
		case "valAx":
			info.YTitle, info.YMax = readAxis(decoder)
		default:
			if kind, ok := chartKinds[se.Name.Local]; ok {
				info.Kind = kind
				info.Series = append(info.Series, readSeriesList(decoder)...)
			}
		}
	}
	return info
}

// readTitle concatenates the a:t runs of a title element.
func readTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func readAxis(decoder *xml.Decoder) (title string, max *float64) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = readTitle(decoder)
				depth--
			case "max":
				if v, ok := floatAttr(t, "val"); ok {
					max = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return title, max
}

func readSeriesList(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, readSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return series
}

func readSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = readReference(decoder)
				depth--
			case "cat":
				_, s.XRange = readReference(decoder)
				depth--
			case "val":
				_, s.YRange = readReference(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return s
}

// readReference returns the first cached value and formula of a data source.
func readReference(decoder *xml.Decoder) (value, formula string) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil && formula == "" {
					formula = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil && value == "" {
					value = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return value, formula
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func floatAttr(se xml.StartElement, name string) (float64, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			v, err := strconv.ParseFloat(attr.Value, 64)
			return v, err == nil
		}
	}
	return 0, false
}
