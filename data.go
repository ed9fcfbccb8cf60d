package gnuplot

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/viant/gnuplot/command"
)

// Number is any built-in integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float64s converts values for the plot calls.
func Float64s[T Number](values []T) []float64 {
	if values == nil {
		return nil
	}
	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = float64(v)
	}
	return result
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkSeries requires every collection to be non-empty and as long as the
// first one. names label the collections in errors.
func checkSeries(names []string, series ...[]float64) error {
	for i, values := range series {
		if len(values) == 0 {
			return fmt.Errorf("%w: %s: sample collection is empty", ErrInvalidArgument, names[i])
		}
	}
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return fmt.Errorf("%w: length of the sample collections differs: %s has %d, %s has %d",
				ErrInvalidArgument, names[0], len(series[0]), names[i], len(series[i]))
		}
	}
	return nil
}

// checkColumns requires 1-based column numbers.
func checkColumns(columns ...int) error {
	for _, column := range columns {
		if column < 1 {
			return fmt.Errorf("%w: column numbers start at 1, got %d", ErrInvalidArgument, column)
		}
	}
	return nil
}

// encodeRows writes one line per sample with the series as space separated
// columns. All series must have the same length.
func encodeRows(series ...[]float64) []byte {
	buf := &bytes.Buffer{}
	for i := range series[0] {
		for j, values := range series {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(formatFloat(values[i]))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// encodeImage writes "column row value" lines for a row-major grayscale
// buffer.
func encodeImage(pixels []byte, width, height int) []byte {
	buf := &bytes.Buffer{}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			buf.WriteString(strconv.Itoa(col))
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(row))
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(int(pixels[row*width+col])))
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// quotePath renders a file name as a gnuplot string; gnuplot accepts forward
// slashes on every platform.
func quotePath(name string) string {
	return command.Quote(filepath.ToSlash(name))
}
