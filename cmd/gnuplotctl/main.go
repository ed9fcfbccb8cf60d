// gnuplotctl plots whitespace separated numeric columns with gnuplot.
//
// Usage:
//
//	gnuplotctl [flags] [file]
//
// Samples are read from file, or from standard input when file is omitted or
// "-". Lines starting with '#' are skipped. With --output the graph is saved
// to a file, otherwise it opens in a persistent window. Variables from a .env
// file in the working directory are loaded before the config, so GNUPLOT_PATH
// and friends can live there.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/viant/gnuplot"
	"github.com/viant/gnuplot/logging"
	"github.com/viant/gnuplot/transport"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	columns   int
	style     string
	smooth    string
	title     string
	labels    []string
	output    string
	terminal  string
	configURL string
	logLevel  string
	batch     string
	dryRun    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	flagSet := pflag.NewFlagSet("gnuplotctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVarP(&opts.columns, "columns", "c", 2, "columns to plot: 1 (y), 2 (x y) or 3 (x y z)")
	flagSet.StringVarP(&opts.style, "style", "s", "", "line style, e.g. lines, points, linespoints")
	flagSet.StringVar(&opts.smooth, "smooth", "", "smoothing mode for 2D plots, e.g. csplines, bezier")
	flagSet.StringVarP(&opts.title, "title", "t", "", "plot title")
	flagSet.StringSliceVar(&opts.labels, "labels", nil, "axis labels, comma separated: x,y[,z]")
	flagSet.StringVarP(&opts.output, "output", "o", "", "save the graph to this file instead of showing it")
	flagSet.StringVar(&opts.terminal, "terminal", "", "gnuplot terminal (figure terminal with --output, screen terminal otherwise)")
	flagSet.StringVar(&opts.configURL, "config", "", "YAML config location")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flagSet.StringVar(&opts.batch, "batch", "", "write commands to this script and run gnuplot once")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "print the gnuplot commands instead of running gnuplot")
	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}
	if opts.columns < 1 || opts.columns > 3 {
		return nil, nil, fmt.Errorf("%w: --columns must be 1, 2 or 3, got %d", gnuplot.ErrInvalidArgument, opts.columns)
	}
	if len(opts.labels) > 3 {
		return nil, nil, fmt.Errorf("%w: at most 3 labels, got %d", gnuplot.ErrInvalidArgument, len(opts.labels))
	}
	return opts, flagSet.Args(), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	config := gnuplot.DefaultConfig()
	config.ApplyEnv()
	if opts.configURL != "" {
		if config, err = gnuplot.LoadConfig(ctx, nil, opts.configURL); err != nil {
			return err
		}
	}
	if opts.logLevel != "" {
		config.Log.Level = opts.logLevel
	}
	logger, err := logging.New(config.Log, stderr)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(rest, stdin)
	if err != nil {
		return err
	}
	defer closeInput()
	columns, err := readColumns(input, opts.columns)
	if err != nil {
		return err
	}
	logger.Debug().Int("samples", len(columns[0])).Int("columns", opts.columns).Msg("samples read")

	sessionOptions := []gnuplot.Option{gnuplot.WithConfig(config), gnuplot.WithLogger(logger)}
	var recorder *transport.Recorder
	switch {
	case opts.dryRun:
		recorder = transport.NewRecorder()
		sessionOptions = append(sessionOptions, gnuplot.WithTransport(recorder))
	case opts.batch != "":
		sessionOptions = append(sessionOptions, gnuplot.WithBatch(opts.batch))
	}
	if opts.style != "" {
		sessionOptions = append(sessionOptions, gnuplot.WithStyle(opts.style))
	}
	if opts.output == "" && opts.terminal != "" {
		sessionOptions = append(sessionOptions, gnuplot.WithTerminal(opts.terminal))
	}
	session, err := gnuplot.New(ctx, sessionOptions...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
		if recorder != nil {
			for _, line := range recorder.Commands {
				fmt.Fprintln(stdout, line)
			}
		}
	}()
	return plot(ctx, session, opts, columns)
}

func plot(ctx context.Context, session *gnuplot.Session, opts *options, columns [][]float64) error {
	if opts.output != "" {
		if err := session.SaveToFigure(opts.output, opts.terminal); err != nil {
			return err
		}
	}
	if err := setLabels(session, opts.labels); err != nil {
		return err
	}
	session.SetSmooth(opts.smooth)
	switch len(columns) {
	case 1:
		return session.PlotX(ctx, columns[0], opts.title)
	case 2:
		return session.PlotXY(ctx, columns[0], columns[1], opts.title)
	default:
		return session.PlotXYZ(ctx, columns[0], columns[1], columns[2], opts.title)
	}
}

func setLabels(session *gnuplot.Session, labels []string) error {
	setters := []func(string) error{session.SetXLabel, session.SetYLabel, session.SetZLabel}
	for i, label := range labels {
		if err := setters[i](label); err != nil {
			return err
		}
	}
	return nil
}

func openInput(args []string, stdin io.Reader) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}
	if len(args) > 1 {
		return nil, nil, fmt.Errorf("%w: unexpected argument: %s", gnuplot.ErrInvalidArgument, args[1])
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", gnuplot.ErrNotFound, err)
	}
	return f, func() { _ = f.Close() }, nil
}
