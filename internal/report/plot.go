package report

import (
	"errors"

	"github.com/guptarohit/asciigraph"
)

var ErrNoData = errors.New("report: no data to plot")

type PlotOptions struct {
	Height  int
	Width   int
	Caption string
}

// Plot renders values as an ASCII line chart.
func Plot(values []float64, opts PlotOptions) (string, error) {
	if len(values) == 0 {
		return "", ErrNoData
	}

	var plotOpts []asciigraph.Option
	if opts.Height > 0 {
		plotOpts = append(plotOpts, asciigraph.Height(opts.Height))
	}
	if opts.Width > 0 {
		plotOpts = append(plotOpts, asciigraph.Width(opts.Width))
	}
	if opts.Caption != "" {
		plotOpts = append(plotOpts, asciigraph.Caption(opts.Caption))
	}
	return asciigraph.Plot(values, plotOpts...), nil
}
