package aggregate

import (
	"errors"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// Group names used for a train/valid split.
const (
	GroupTrain = "train"
	GroupValid = "valid"
)

// LabelFile holds the category codes read from one label file.
type LabelFile struct {
	Path  string
	Codes []int
}

// CountCategories maps every code to its label and counts the occurrences.
// Labels are listed in order of first appearance. An unmapped code fails the
// whole count.
func CountCategories(group string, codes []int) (models.GroupCounts, error) {
	c := newCounter(group)
	if err := c.add(codes); err != nil {
		return models.GroupCounts{}, err
	}
	return c.counts, nil
}

// CountFiles counts the codes of several label files into one group, in file
// order. An unmapped code fails with the path of the file holding it.
func CountFiles(group string, files []LabelFile) (models.GroupCounts, error) {
	c := newCounter(group)
	for _, f := range files {
		if err := c.add(f.Codes); err != nil {
			var unknown *models.UnknownCategoryError
			if errors.As(err, &unknown) {
				unknown.Path = f.Path
			}
			return models.GroupCounts{}, err
		}
	}
	return c.counts, nil
}

// CountTrainValid counts the train and valid code sequences of one split.
func CountTrainValid(train, valid []int) (*models.TrainValid, error) {
	t, err := CountCategories(GroupTrain, train)
	if err != nil {
		return nil, err
	}
	v, err := CountCategories(GroupValid, valid)
	if err != nil {
		return nil, err
	}
	return &models.TrainValid{Train: t, Valid: v}, nil
}

type counter struct {
	counts models.GroupCounts
	index  map[string]int
}

func newCounter(group string) *counter {
	return &counter{
		counts: models.GroupCounts{Group: group},
		index:  make(map[string]int),
	}
}

func (c *counter) add(codes []int) error {
	for _, code := range codes {
		label, err := models.CategoryCode(code).Label()
		if err != nil {
			return err
		}
		if i, ok := c.index[label]; ok {
			c.counts.Counts[i].Count++
			continue
		}
		c.index[label] = len(c.counts.Counts)
		c.counts.Counts = append(c.counts.Counts, models.CategoryCount{Label: label, Count: 1})
	}
	return nil
}
