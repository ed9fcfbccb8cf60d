// Package gnuplot drives an installed gnuplot through a pipe.
//
// A Session owns one gnuplot process (or, in batch mode, one script), the
// temporary files holding the samples it plotted, and the little state needed
// to decide whether the next plot starts a new graph or is added to the
// current one:
//
//	s, err := gnuplot.New(ctx, gnuplot.WithStyle("lines"))
//	if err != nil {
//		return err
//	}
//	defer s.Close(ctx)
//	_ = s.SetTitle("samples")
//	_ = s.PlotX(ctx, []float64{1, 4, 9}, "squares")
//	_ = s.PlotEquation("sqrt(x)", "")
//
// Numeric slices of any type are converted with Float64s. Errors wrap the
// sentinels in errors.go; nothing is retried.
package gnuplot
