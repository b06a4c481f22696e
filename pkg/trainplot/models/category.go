package models

// CategoryCode is the integer class id written by the labeling pipeline.
type CategoryCode int

const (
	// CodeBoulder marks a boulder visible above the water line.
	CodeBoulder CategoryCode = 0
	// CodeSubmergedBoulder marks a boulder below the water line.
	CodeSubmergedBoulder CategoryCode = 1
)

// CategoryLabels maps every known category code to its display label.
var CategoryLabels = map[CategoryCode]string{
	CodeBoulder:          "boulder",
	CodeSubmergedBoulder: "submerged boulder",
}

// Label returns the display label for the code.
// Codes outside CategoryLabels yield an *UnknownCategoryError.
func (c CategoryCode) Label() (string, error) {
	label, ok := CategoryLabels[c]
	if !ok {
		return "", &UnknownCategoryError{Code: int(c)}
	}
	return label, nil
}

// CategoryCount is the number of occurrences of one label.
type CategoryCount struct {
	// Label is the category display label.
	Label string `json:"label"`
	// Count is the number of occurrences.
	Count int `json:"count"`
}

// GroupCounts holds per-label counts for one named group of label files.
type GroupCounts struct {
	// Group is the group name ("train" or "valid").
	Group string `json:"group"`
	// Counts lists labels in first-appearance order.
	Counts []CategoryCount `json:"counts"`
}

// Total returns the sum of all counts in the group.
func (g GroupCounts) Total() int {
	total := 0
	for _, c := range g.Counts {
		total += c.Count
	}
	return total
}

// Count returns the count recorded for label, or 0.
func (g GroupCounts) Count(label string) int {
	for _, c := range g.Counts {
		if c.Label == label {
			return c.Count
		}
	}
	return 0
}

// Labels returns the labels in recorded order.
func (g GroupCounts) Labels() []string {
	labels := make([]string, len(g.Counts))
	for i, c := range g.Counts {
		labels[i] = c.Label
	}
	return labels
}

// TrainValid holds the category counts of a train/valid split.
type TrainValid struct {
	Train GroupCounts `json:"train"`
	Valid GroupCounts `json:"valid"`
}
