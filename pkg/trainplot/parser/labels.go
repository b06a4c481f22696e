package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/ukaji3/trainplot-go/pkg/trainplot/models"
)

// ErrNotDigit indicates a label line that does not start with a decimal digit.
var ErrNotDigit = errors.New("leading character is not a digit")

// ReadLabelCodes reads the category code of every line of a label file.
// Only the first character of a line is used; the rest (box coordinates) is ignored.
func ReadLabelCodes(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLabelCodesFrom(f, path)
}

// ReadLabelCodesFrom reads category codes from r. path is used for error context only.
func ReadLabelCodesFrom(r io.Reader, path string) ([]int, error) {
	var codes []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || text[0] < '0' || text[0] > '9' {
			value := text
			if len(value) > 1 {
				value = value[:1]
			}
			return nil, &models.FormatError{Path: path, Line: line, Value: value, Err: ErrNotDigit}
		}
		codes = append(codes, int(text[0]-'0'))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return codes, nil
}

// ReadLabelFiles concatenates the codes of several label files, in order.
func ReadLabelFiles(paths []string) ([]int, error) {
	var codes []int
	for _, p := range paths {
		c, err := ReadLabelCodes(p)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c...)
	}
	return codes, nil
}

// GlobLabelFiles returns the regular files directly inside dir, sorted by name.
func GlobLabelFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}

	files := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
