package aggregate

import "github.com/ukaji3/trainplot-go/pkg/trainplot/models"

// Summarize returns the final, largest and smallest values of a series.
// An empty series yields a summary with only the name set.
func Summarize(s *models.Series) models.Summary {
	sum := models.Summary{Name: s.Name, Points: s.Len()}
	if s.Len() == 0 {
		return sum
	}

	sum.Final = s.Y[len(s.Y)-1]
	sum.Max, sum.Min = s.Y[0], s.Y[0]
	sum.MaxX, sum.MinX = xAt(s, 0), xAt(s, 0)
	for i, y := range s.Y[1:] {
		if y > sum.Max {
			sum.Max, sum.MaxX = y, xAt(s, i+1)
		}
		if y < sum.Min {
			sum.Min, sum.MinX = y, xAt(s, i+1)
		}
	}
	return sum
}

// SummarizeAll summarizes each series in order.
func SummarizeAll(series ...*models.Series) []models.Summary {
	out := make([]models.Summary, 0, len(series))
	for _, s := range series {
		out = append(out, Summarize(s))
	}
	return out
}

func xAt(s *models.Series, i int) float64 {
	if i < len(s.X) {
		return s.X[i]
	}
	return float64(i)
}
