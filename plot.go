package gnuplot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/gnuplot/access"
	"github.com/viant/gnuplot/command"
	"github.com/viant/gnuplot/tracing"
)

// PlotX plots x against the sample index.
func (s *Session) PlotX(ctx context.Context, x []float64, title string) error {
	if err := checkSeries([]string{"x"}, x); err != nil {
		return err
	}
	name, err := s.writeData(ctx, encodeRows(x))
	if err != nil {
		return err
	}
	return s.PlotFileX(ctx, name, 1, title)
}

// PlotXY plots y against x.
func (s *Session) PlotXY(ctx context.Context, x, y []float64, title string) error {
	if err := checkSeries([]string{"x", "y"}, x, y); err != nil {
		return err
	}
	name, err := s.writeData(ctx, encodeRows(x, y))
	if err != nil {
		return err
	}
	return s.PlotFileXY(ctx, name, 1, 2, title)
}

// PlotXYErr plots y against x with vertical error bars of size dy.
func (s *Session) PlotXYErr(ctx context.Context, x, y, dy []float64, title string) error {
	if err := checkSeries([]string{"x", "y", "dy"}, x, y, dy); err != nil {
		return err
	}
	name, err := s.writeData(ctx, encodeRows(x, y, dy))
	if err != nil {
		return err
	}
	return s.PlotFileXYErr(ctx, name, 1, 2, 3, title)
}

// PlotXYZ plots the points (x, y, z) in 3D.
func (s *Session) PlotXYZ(ctx context.Context, x, y, z []float64, title string) error {
	if err := checkSeries([]string{"x", "y", "z"}, x, y, z); err != nil {
		return err
	}
	name, err := s.writeData(ctx, encodeRows(x, y, z))
	if err != nil {
		return err
	}
	return s.PlotFileXYZ(ctx, name, 1, 2, 3, title)
}

// PlotImage plots a row-major grayscale image of width x height pixels.
func (s *Session) PlotImage(ctx context.Context, pixels []byte, width, height int, title string) error {
	if len(pixels) == 0 {
		return fmt.Errorf("%w: image: sample collection is empty", ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("%w: image has %d pixels, expected %dx%d", ErrInvalidArgument, len(pixels), width, height)
	}
	name, err := s.writeData(ctx, encodeImage(pixels, width, height))
	if err != nil {
		return err
	}
	return s.cmd(ctx, s.verb2D()+" "+quotePath(name)+titleClause(title)+" with image")
}

// PlotFileX plots column of filename against the line number.
func (s *Session) PlotFileX(ctx context.Context, filename string, column int, title string) error {
	if err := s.checkFile(filename, column); err != nil {
		return err
	}
	return s.cmd(ctx, s.verb2D()+" "+quotePath(filename)+using(column)+titleClause(title)+s.styleClause())
}

// PlotFileXY plots column colY of filename against column colX.
func (s *Session) PlotFileXY(ctx context.Context, filename string, colX, colY int, title string) error {
	if err := s.checkFile(filename, colX, colY); err != nil {
		return err
	}
	return s.cmd(ctx, s.verb2D()+" "+quotePath(filename)+using(colX, colY)+titleClause(title)+s.styleClause())
}

// PlotFileXYErr plots colY against colX with error bars taken from colDY.
func (s *Session) PlotFileXYErr(ctx context.Context, filename string, colX, colY, colDY int, title string) error {
	if err := s.checkFile(filename, colX, colY, colDY); err != nil {
		return err
	}
	return s.cmd(ctx, s.verb2D()+" "+quotePath(filename)+using(colX, colY, colDY)+titleClause(title)+" with errorbars")
}

// PlotFileXYZ plots three columns of filename in 3D.
func (s *Session) PlotFileXYZ(ctx context.Context, filename string, colX, colY, colZ int, title string) error {
	if err := s.checkFile(filename, colX, colY, colZ); err != nil {
		return err
	}
	return s.cmd(ctx, s.verb3D()+" "+quotePath(filename)+using(colX, colY, colZ)+titleClause(title)+" with "+s.style)
}

// PlotSlope plots the line y = a*x + b.
func (s *Session) PlotSlope(a, b float64, title string) error {
	expr := formatFloat(a) + " * x + " + formatFloat(b)
	if title == "" {
		title = "f(x) = " + expr
	}
	return s.Cmd(s.verb2D() + " " + expr + " title " + command.Quote(title) + " with " + s.style)
}

// PlotEquation plots a function of x such as "sin(x) * cos(2*x)".
func (s *Session) PlotEquation(expr, title string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("%w: equation must not be empty", ErrInvalidArgument)
	}
	return s.Cmd(s.verb2D() + " " + expr + titleClause(title) + " with " + s.style)
}

// PlotEquation3D plots a function of x and y such as "x*y".
func (s *Session) PlotEquation3D(expr, title string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("%w: equation must not be empty", ErrInvalidArgument)
	}
	if title == "" {
		title = "f(x,y) = " + expr
	}
	return s.Cmd(s.verb3D() + " " + expr + " title " + command.Quote(title) + " with " + s.style)
}

func (s *Session) writeData(ctx context.Context, data []byte) (name string, err error) {
	ctx, span := tracing.StartSpan(ctx, "gnuplot.tmpfile", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	if name, err = s.tmpFiles.Create(ctx, data); err != nil {
		return "", err
	}
	span.WithAttributes(map[string]string{"gnuplot.tmpfile": name})
	s.logger.Debug().Str("file", name).Int("bytes", len(data)).Msg("data written")
	return name, nil
}

func (s *Session) checkFile(filename string, columns ...int) error {
	if err := checkColumns(columns...); err != nil {
		return err
	}
	return access.Available(filename)
}

// verb2D adds to the current graph when it is two dimensional.
func (s *Session) verb2D() string {
	if s.plots > 0 && s.twoDim {
		return "replot"
	}
	return "plot"
}

// verb3D adds to the current graph when it is three dimensional.
func (s *Session) verb3D() string {
	if s.plots > 0 && !s.twoDim {
		return "replot"
	}
	return "splot"
}

func (s *Session) styleClause() string {
	if s.smooth != "" {
		return " smooth " + s.smooth
	}
	return " with " + s.style
}

func using(columns ...int) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = strconv.Itoa(column)
	}
	return " using " + strings.Join(parts, ":")
}

func titleClause(title string) string {
	if title == "" {
		return " notitle"
	}
	return " title " + command.Quote(title)
}
