package parser

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

func TestReadLabelCodesFrom(t *testing.T) {
	input := "0 0.512 0.433 0.020 0.031\n1 0.100 0.200 0.010 0.010\n0 0.9 0.9 0.1 0.1\n"

	codes, err := ReadLabelCodesFrom(strings.NewReader(input), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, codes)
}

func TestReadLabelCodesOnlyFirstCharacter(t *testing.T) {
	// "12 ..." is class 1 followed by ignored text, as in the labeling output.
	codes, err := ReadLabelCodesFrom(strings.NewReader("12 0.1\n7\n"), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, codes)
}

func TestReadLabelCodesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		value string
	}{
		{"letter", "0 0.1\nx 0.2\n", 2, "x"},
		{"leading space", " 0 0.1\n", 1, " "},
		{"blank line", "0\n\n1\n", 2, ""},
		{"minus sign", "-1 0.1\n", 1, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLabelCodesFrom(strings.NewReader(tt.input), "labels.txt")

			var formatErr *models.FormatError
			require.True(t, errors.As(err, &formatErr), "expected FormatError, got %v", err)
			assert.Equal(t, tt.line, formatErr.Line)
			assert.Equal(t, tt.value, formatErr.Value)
			assert.Equal(t, "labels.txt", formatErr.Path)
			assert.True(t, errors.Is(err, ErrNotDigit))
		})
	}
}

func TestReadLabelFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "train/a.txt", "0 1 1 1 1\n0 1 1 1 1\n")
	b := writeFile(t, dir, "train/b.txt", "1 1 1 1 1\n")
	writeFile(t, dir, "train/nested/c.txt", "1 1 1 1 1\n")

	files, err := GlobLabelFiles(filepath.Join(dir, "train"))
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	codes, err := ReadLabelFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, codes)
}

func TestReadLabelFilesStopsOnError(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "0\n")
	b := writeFile(t, dir, "b.txt", "?\n")

	codes, err := ReadLabelFiles([]string{a, b})
	assert.Nil(t, codes)

	var formatErr *models.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, b, formatErr.Path)
}

func TestGlobLabelFilesEmptyDir(t *testing.T) {
	files, err := GlobLabelFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
