package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// Render draws c to w.
func Render(w io.Writer, c Chart, cfg Config) error {
	switch ch := c.(type) {
	case *models.LineChart:
		return RenderLine(w, ch, cfg)
	case *models.BarChart:
		return RenderBar(w, ch, cfg)
	default:
		return fmt.Errorf("unsupported chart type %T", c)
	}
}

// Bytes renders c into memory.
func Bytes(c Chart, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders c completely in memory and then writes it to path.
// Nothing is written when rendering fails.
func WriteFile(path string, c Chart, cfg Config) error {
	data, err := Bytes(c, cfg)
	if err != nil {
		return err
	}
	return AtomicWrite(path, data)
}
