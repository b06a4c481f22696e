// Package render draws line and bar charts and persists them to disk.
package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is the image encoding of a rendered chart.
type Format string

const (
	// FormatPNG encodes charts as PNG raster images.
	FormatPNG Format = "png"
	// FormatSVG encodes charts as SVG documents.
	FormatSVG Format = "svg"
)

// Config holds rendering settings. It is passed to every render call;
// nothing is configured process-wide.
type Config struct {
	// FontSize is the base font size in points for titles and axis names.
	FontSize float64 `yaml:"font_size"`
	// Width is the image width in pixels.
	Width int `yaml:"width"`
	// Height is the image height in pixels.
	Height int `yaml:"height"`
	// DPI is the raster resolution.
	DPI float64 `yaml:"dpi"`
	// Format selects the image encoding.
	Format Format `yaml:"format"`
}

// DefaultConfig returns the default render settings.
func DefaultConfig() Config {
	return Config{
		FontSize: 14,
		Width:    640,
		Height:   480,
		DPI:      100,
		Format:   FormatPNG,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.DPI <= 0 {
		c.DPI = d.DPI
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	return c
}

// Validate checks the format and sizes.
func (c Config) Validate() error {
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.FontSize < 0 || c.DPI < 0 {
		return fmt.Errorf("font size and dpi must not be negative")
	}
	return nil
}

// Ext returns the file extension for the configured format, with the dot.
func (c Config) Ext() string {
	return "." + string(c.WithDefaults().Format)
}

// ParseFormat parses a format name; the empty string means PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be png or svg)", s)
	}
}

func (c Config) provider() chart.RendererProvider {
	if c.Format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Chart is a chart description accepted by Render.
type Chart interface {
	Type() models.ChartType
}
