package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/gnuplot"
)

// readColumns parses the first n whitespace separated fields of every data
// line. Blank lines and '#' comments are skipped; extra fields are ignored.
func readColumns(r io.Reader, n int) ([][]float64, error) {
	columns := make([][]float64, n)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < n {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d", gnuplot.ErrInvalidArgument, lineNo, n, len(fields))
		}
		for i := 0; i < n; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %d: %v", gnuplot.ErrInvalidArgument, lineNo, i+1, err)
			}
			columns[i] = append(columns[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	if len(columns[0]) == 0 {
		return nil, fmt.Errorf("%w: no samples", gnuplot.ErrInvalidArgument)
	}
	return columns, nil
}
