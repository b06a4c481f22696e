package trainplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/aggregate"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/parser"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
	"go.uber.org/zap"
)

// MetricResult describes a rendered metric chart.
type MetricResult struct {
	// Chart is the chart data that was rendered.
	Chart *models.LineChart
	// Output is the written image path.
	Output string
	// Workbook is the written xlsx path, if any.
	Workbook string
}

// PlotMetric reads every input, optionally averages the runs, renders the
// chart and writes it. The image is only written once the image and the
// workbook are fully encoded; a read, aggregate or render failure aborts the
// call with a *PlotError and nothing is written. If the workbook write fails
// after the image was written, the image is kept and a StageWrite error is
// returned.
func PlotMetric(opts PlotOptions) (*MetricResult, error) {
	name := chartName(opts.Output)
	log := logger(opts.Logger).With(zap.String("chart", name))

	lc, err := LoadMetric(opts)
	if err != nil {
		return nil, err
	}

	image, err := render.Bytes(lc, opts.Render)
	if err != nil {
		return nil, NewPlotError(name, StageRender, err)
	}
	book, err := workbookBytes(opts.Workbook, lc)
	if err != nil {
		return nil, NewPlotError(name, StageRender, err)
	}

	if err := writeOutputs(log, opts.Output, image, opts.Workbook, book); err != nil {
		return nil, NewPlotError(name, StageWrite, err)
	}

	return &MetricResult{Chart: lc, Output: opts.Output, Workbook: opts.Workbook}, nil
}

// LoadMetric reads and aggregates the chart data without rendering it.
func LoadMetric(opts PlotOptions) (*models.LineChart, error) {
	name := chartName(opts.Output)
	log := logger(opts.Logger).With(zap.String("chart", name))

	if err := opts.Validate(); err != nil {
		return nil, NewPlotError(name, StageValidate, err)
	}

	runs := make([]*models.Series, 0, len(opts.Inputs))
	for i, path := range opts.Inputs {
		log.Info("Reading file", zap.String("file", path), zap.String("column", opts.MetricColumn))
		if err := checkExists(path); err != nil {
			return nil, NewPlotError(name, StageRead, err)
		}

		s, err := parser.ReadSeries(path, opts.xColumn(), opts.MetricColumn)
		if err != nil {
			return nil, NewPlotError(name, StageRead, err)
		}
		if opts.RunLabels != nil {
			s.Name = opts.RunLabels[i]
		}
		log.Debug("Read series", zap.String("run", s.Name), zap.Int("rows", s.Len()))
		runs = append(runs, s)
	}

	lc := &models.LineChart{
		Title:       opts.Title,
		XLabel:      opts.xLabel(),
		YLabel:      opts.YLabel,
		LegendTitle: opts.LegendTitle,
		Runs:        runs,
	}

	if opts.IncludeAverage {
		avg, err := aggregate.Mean(AverageName, runs...)
		if err != nil {
			return nil, NewPlotError(name, StageAggregate, err)
		}
		lc.Average = avg
	}

	return lc, nil
}

// PlotClassBars counts the class labels of a train/valid split and writes the
// bar chart. Writes follow the same rules as PlotMetric.
func PlotClassBars(opts BarOptions) (*models.TrainValid, error) {
	name := chartName(opts.Output)
	log := logger(opts.Logger).With(zap.String("chart", name))

	bc, err := LoadClassBars(opts)
	if err != nil {
		return nil, err
	}

	image, err := render.Bytes(bc, opts.Render)
	if err != nil {
		return nil, NewPlotError(name, StageRender, err)
	}
	book, err := workbookBytes(opts.Workbook, bc)
	if err != nil {
		return nil, NewPlotError(name, StageRender, err)
	}

	if err := writeOutputs(log, opts.Output, image, opts.Workbook, book); err != nil {
		return nil, NewPlotError(name, StageWrite, err)
	}

	return &bc.Data, nil
}

// LoadClassBars reads and counts the label files of a split without rendering.
func LoadClassBars(opts BarOptions) (*models.BarChart, error) {
	name := chartName(opts.Output)
	log := logger(opts.Logger).With(zap.String("chart", name))

	if err := opts.Validate(); err != nil {
		return nil, NewPlotError(name, StageValidate, err)
	}

	trainFiles, err := readLabelDir(opts.TrainDir, log)
	if err != nil {
		return nil, NewPlotError(name, StageRead, err)
	}
	validFiles, err := readLabelDir(opts.ValidDir, log)
	if err != nil {
		return nil, NewPlotError(name, StageRead, err)
	}

	train, err := aggregate.CountFiles(aggregate.GroupTrain, trainFiles)
	if err != nil {
		return nil, NewPlotError(name, StageAggregate, err)
	}
	valid, err := aggregate.CountFiles(aggregate.GroupValid, validFiles)
	if err != nil {
		return nil, NewPlotError(name, StageAggregate, err)
	}
	tv := &models.TrainValid{Train: train, Valid: valid}
	log.Debug("Counted classes",
		zap.Int("train", tv.Train.Total()),
		zap.Int("valid", tv.Valid.Total()))

	return &models.BarChart{
		Title:  opts.title(),
		XLabel: "Class",
		YLabel: "Instances",
		YMax:   opts.YMax,
		Data:   *tv,
	}, nil
}

// readLabelDir reads the codes of every label file of dir, keeping them per file.
func readLabelDir(dir string, log *zap.Logger) ([]aggregate.LabelFile, error) {
	if err := checkExists(dir); err != nil {
		return nil, err
	}
	paths, err := parser.GlobLabelFiles(dir)
	if err != nil {
		return nil, err
	}
	log.Info("Reading label files", zap.String("dir", dir), zap.Int("files", len(paths)))

	files := make([]aggregate.LabelFile, 0, len(paths))
	for _, p := range paths {
		codes, err := parser.ReadLabelCodes(p)
		if err != nil {
			return nil, err
		}
		files = append(files, aggregate.LabelFile{Path: p, Codes: codes})
	}
	return files, nil
}

// writeOutputs writes the image, then the workbook when one was built.
func writeOutputs(log *zap.Logger, imagePath string, image []byte, bookPath string, book []byte) error {
	log.Info("Saving plot", zap.String("output", imagePath))
	if err := render.AtomicWrite(imagePath, image); err != nil {
		return err
	}
	if book == nil {
		return nil
	}
	log.Info("Saving workbook", zap.String("output", bookPath))
	return render.AtomicWrite(bookPath, book)
}

func workbookBytes(path string, c render.Chart) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	f, err := render.Workbook(c)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

func chartName(output string) string {
	base := filepath.Base(output)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
