package gnuplot

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/viant/gnuplot/command"
)

// smoothModes are the smoothing options SetSmooth accepts.
var smoothModes = map[string]bool{
	"csplines":  true,
	"acsplines": true,
	"bezier":    true,
	"sbezier":   true,
	"unique":    true,
	"frequency": true,
}

// contourPositions are the SetContour positions; anything else means base.
var contourPositions = map[string]bool{
	"base":    true,
	"surface": true,
	"both":    true,
}

// SetStyle sets the style used by later plots, e.g. lines, points,
// linespoints, impulses, dots, steps, boxes or filledcurves. An empty style
// is ignored.
func (s *Session) SetStyle(style string) {
	if style = strings.TrimSpace(style); style != "" {
		s.style = style
	}
}

// SetSmooth enables a smoothing mode for 2D data plots. Unknown modes disable
// smoothing.
func (s *Session) SetSmooth(mode string) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if !smoothModes[mode] {
		s.smooth = ""
		return
	}
	s.smooth = mode
}

// UnsetSmooth disables smoothing.
func (s *Session) UnsetSmooth() {
	s.smooth = ""
}

// SetPointSize scales the point symbols.
func (s *Session) SetPointSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: point size must be a positive number, got %v", ErrInvalidArgument, size)
	}
	return s.Cmd("set pointsize " + formatFloat(size))
}

func (s *Session) SetGrid() error { return s.Cmd("set grid") }
func (s *Session) UnsetGrid() error { return s.Cmd("unset grid") }

// SetMultiplot places the following plots side by side on one page.
func (s *Session) SetMultiplot() error { return s.Cmd("set multiplot") }
func (s *Session) UnsetMultiplot() error { return s.Cmd("unset multiplot") }

// SetSamples sets how many points a function plot is sampled at.
func (s *Session) SetSamples(samples int) error {
	if samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrInvalidArgument, samples)
	}
	return s.Cmd(fmt.Sprintf("set samples %d", samples))
}

// SetIsoSamples sets the isoline density of 3D function plots.
func (s *Session) SetIsoSamples(samples int) error {
	if samples < 2 {
		return fmt.Errorf("%w: isosamples must be at least 2, got %d", ErrInvalidArgument, samples)
	}
	return s.Cmd(fmt.Sprintf("set isosamples %d", samples))
}

func (s *Session) SetHidden3D() error { return s.Cmd("set hidden3d") }
func (s *Session) UnsetHidden3D() error { return s.Cmd("unset hidden3d") }

// SetContour draws contour lines at base, surface or both.
func (s *Session) SetContour(position string) error {
	position = strings.ToLower(strings.TrimSpace(position))
	if !contourPositions[position] {
		position = "base"
	}
	return s.Cmd("set contour " + position)
}

func (s *Session) UnsetContour() error { return s.Cmd("unset contour") }
func (s *Session) SetSurface() error { return s.Cmd("set surface") }
func (s *Session) UnsetSurface() error { return s.Cmd("unset surface") }
func (s *Session) UnsetLegend() error { return s.Cmd("unset key") }

// SetLegend shows the key at position, for example "top left" or
// "outside right bottom". An empty position restores the default placement.
func (s *Session) SetLegend(position string) error {
	if position = strings.TrimSpace(position); position == "" {
		position = "default"
	}
	return s.Cmd("set key " + position)
}

// SetTitle sets the graph title.
func (s *Session) SetTitle(title string) error {
	return s.Cmd("set title " + command.Quote(title))
}

// UnsetTitle clears the graph title.
func (s *Session) UnsetTitle() error {
	return s.SetTitle("")
}

func (s *Session) SetXLabel(label string) error { return s.setLabel(context.Background(), "x", label) }
func (s *Session) SetYLabel(label string) error { return s.setLabel(context.Background(), "y", label) }
func (s *Session) SetZLabel(label string) error { return s.setLabel(context.Background(), "z", label) }

func (s *Session) setLabel(ctx context.Context, axis, label string) error {
	return s.cmd(ctx, "set "+axis+"label "+command.Quote(label))
}

// SetXRange fixes the x axis to [from:to]. Reversed bounds flip the axis.
func (s *Session) SetXRange(from, to float64) error { return s.setRange("x", from, to) }
func (s *Session) SetYRange(from, to float64) error { return s.setRange("y", from, to) }
func (s *Session) SetZRange(from, to float64) error { return s.setRange("z", from, to) }
func (s *Session) SetCBRange(from, to float64) error { return s.setRange("cb", from, to) }

func (s *Session) setRange(axis string, from, to float64) error {
	if !finite(from) || !finite(to) {
		return fmt.Errorf("%w: %srange bounds must be finite, got [%v:%v]", ErrInvalidArgument, axis, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %srange is empty, got [%v:%v]", ErrInvalidArgument, axis, from, to)
	}
	return s.Cmd("set " + axis + "range[" + formatFloat(from) + ":" + formatFloat(to) + "]")
}

// SetXAutoscale lets gnuplot choose the x range again.
func (s *Session) SetXAutoscale() error { return s.autoscale("x") }
func (s *Session) SetYAutoscale() error { return s.autoscale("y") }
func (s *Session) SetZAutoscale() error { return s.autoscale("z") }

func (s *Session) autoscale(axis string) error {
	if err := s.Cmd("set " + axis + "range restore"); err != nil {
		return err
	}
	return s.Cmd("set autoscale " + axis)
}

// SetXLogscale switches the x axis to a logarithmic scale of base.
func (s *Session) SetXLogscale(base float64) error { return s.logscale("x", base) }
func (s *Session) SetYLogscale(base float64) error { return s.logscale("y", base) }
func (s *Session) SetZLogscale(base float64) error { return s.logscale("z", base) }

func (s *Session) UnsetXLogscale() error { return s.Cmd("unset logscale x") }
func (s *Session) UnsetYLogscale() error { return s.Cmd("unset logscale y") }
func (s *Session) UnsetZLogscale() error { return s.Cmd("unset logscale z") }

func (s *Session) logscale(axis string, base float64) error {
	if !finite(base) || base <= 1 {
		return fmt.Errorf("%w: logscale base must be greater than 1, got %v", ErrInvalidArgument, base)
	}
	return s.Cmd("set logscale " + axis + " " + formatFloat(base))
}

// ShowOnScreen directs output to the on-screen terminal.
func (s *Session) ShowOnScreen() error {
	return s.showOnScreen(context.Background())
}

func (s *Session) showOnScreen(ctx context.Context) error {
	if err := s.cmd(ctx, "set output"); err != nil {
		return err
	}
	return s.cmd(ctx, "set terminal "+s.terminal)
}

// DefaultFigureTerminal is used by SaveToFigure when no terminal is given.
const DefaultFigureTerminal = "ps"

// SaveToFigure directs output to filename using terminal, e.g. "png",
// "pdfcairo" or "svg size 800,600". Call ShowOnScreen to switch back.
func (s *Session) SaveToFigure(filename, terminal string) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("%w: figure file name must not be empty", ErrInvalidArgument)
	}
	if terminal = strings.TrimSpace(terminal); terminal == "" {
		terminal = DefaultFigureTerminal
	}
	if err := s.Cmd("set terminal " + terminal); err != nil {
		return err
	}
	return s.Cmd("set output " + quotePath(filename))
}

// SetTerminalStd changes the terminal used by ShowOnScreen; it takes effect
// on the next ShowOnScreen or ResetAll.
func (s *Session) SetTerminalStd(terminal string) error {
	if terminal = strings.TrimSpace(terminal); terminal == "" {
		return fmt.Errorf("%w: terminal must not be empty", ErrInvalidArgument)
	}
	if err := checkDisplay(terminal); err != nil {
		return err
	}
	s.terminal = terminal
	return nil
}
