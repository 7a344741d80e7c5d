// Package input turns command-line arguments and delimited text into
// numbers for an Analyzer.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/containerd/errdefs"
)

// ParseArgs parses each argument as a number. Arguments may themselves hold
// several comma separated values, as in "1,2,3".
func ParseArgs(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		for _, field := range splitFields(arg) {
			v, err := parseNumber(field)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// Read parses numbers separated by commas, semicolons or whitespace. Blank
// lines and text after '#' are ignored.
func Read(r io.Reader) ([]float64, error) {
	values := make([]float64, 0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		for _, field := range splitFields(text) {
			v, err := parseNumber(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number: %w", s, errdefs.ErrInvalidArgument)
	}
	return v, nil
}
