package trainplot

import (
	"path/filepath"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/render"
)

// Folds lists the five cross-validation splits, named by the training
// subsets and the held-out validation subset.
var Folds = []string{
	"train2345-valid1",
	"train1345-valid2",
	"train1245-valid3",
	"train1235-valid4",
	"train1234-valid5",
}

// ResultsFile is the metric log written by the training pipeline in every run directory.
const ResultsFile = "results.csv"

// FoldInputs returns the metric log of every fold for a run prefix:
// <root>/<prefix>-<fold>/results.csv.
func FoldInputs(root, prefix string) []string {
	inputs := make([]string, len(Folds))
	for i, fold := range Folds {
		inputs[i] = filepath.Join(root, prefix+"-"+fold, ResultsFile)
	}
	return inputs
}

// FoldLabelDirs returns the train and valid label directories of a split:
// <root>/bar/<instance>/{train,valid}.
func FoldLabelDirs(root, instance string) (train, valid string) {
	base := filepath.Join(root, "bar", instance)
	return filepath.Join(base, "train"), filepath.Join(base, "valid")
}

// Jobs is a set of charts rendered together.
type Jobs struct {
	Lines []PlotOptions
	Bars  []BarOptions
}

// Len returns the number of charts in the set.
func (j Jobs) Len() int {
	return len(j.Lines) + len(j.Bars)
}

// DefaultJobs returns the standard chart set of a cross-validation experiment:
// precision per fold, recall and precision averaged over folds, object loss per
// fold and the class distribution of the first split.
func DefaultJobs(root, outDir string, cfg render.Config) Jobs {
	ext := cfg.Ext()
	out := func(name string) string { return filepath.Join(outDir, name+ext) }

	line := func(name, prefix, metric, title, yLabel string, average bool) PlotOptions {
		opts := PlotOptions{
			MetricColumn:   metric,
			Title:          title,
			YLabel:         yLabel,
			IncludeAverage: average,
			RunLabels:      append([]string(nil), Folds...),
			Inputs:         FoldInputs(root, prefix),
			Output:         out(name),
			Render:         cfg,
		}
		if !average {
			opts.LegendTitle = "k-fold group"
		}
		return opts
	}

	instance := Folds[0]
	train, valid := FoldLabelDirs(root, instance)

	return Jobs{
		Lines: []PlotOptions{
			line("plot_epoch_precision", "b3", "metrics/precision", "Precision curve", "Precision", false),
			line("plot_epoch_recall_avg", "b3", "metrics/recall", "Recall curve", "Recall", true),
			line("plot_epoch_precision_avg", "b3", "metrics/precision", "Precision curve", "Precision", true),
			line("plot_b_epoch_objloss", "b", "train/obj_loss", "Object loss during training", "Object loss", false),
		},
		Bars: []BarOptions{
			{
				Instance: instance,
				TrainDir: train,
				ValidDir: valid,
				YMax:     13000,
				Output:   out("bar-" + instance),
				Render:   cfg,
			},
		},
	}
}
