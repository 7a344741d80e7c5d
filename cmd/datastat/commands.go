package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/datastat/internal/config"
	"github.com/san-kum/datastat/internal/dataset"
	"github.com/san-kum/datastat/internal/input"
	"github.com/san-kum/datastat/internal/metrics"
	"github.com/san-kum/datastat/internal/report"
	"github.com/san-kum/datastat/internal/tui"
)

// loadConfig resolves --preset and --config. Only one may be given.
func loadConfig() (*config.Config, error) {
	switch {
	case preset != "" && configFile != "":
		return nil, fmt.Errorf("--preset and --config are mutually exclusive: %w", errdefs.ErrInvalidArgument)
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q: %w", preset, errdefs.ErrNotFound)
		}
		return cfg, nil
	case configFile != "":
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

// loadAnalyzer builds the dataset from config, then --file, then args.
func loadAnalyzer(cmd *cobra.Command, args []string) (*dataset.Analyzer, *config.Config, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	a, err := cfg.Analyzer()
	if err != nil {
		return nil, nil, err
	}
	fromConfig := a.Len()

	fromFile := 0
	if dataFile != "" {
		values, err := readDataFile(cmd, dataFile)
		if err != nil {
			return nil, nil, err
		}
		a.AddData(values...)
		fromFile = len(values)
	}

	values, err := input.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	a.AddData(values...)

	log.G(ctx).WithFields(log.Fields{
		"config": fromConfig,
		"file":   fromFile,
		"args":   len(values),
	}).Debug("dataset loaded")

	return a, cfg, nil
}

func readDataFile(cmd *cobra.Command, path string) ([]float64, error) {
	if path == "-" {
		return input.Read(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := input.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

func withAnalyzer(cmd *cobra.Command, args []string, fn func(*dataset.Analyzer, *config.Config) error) error {
	a, cfg, err := loadAnalyzer(cmd, args)
	if err != nil {
		return err
	}
	return fn(a, cfg)
}

func outputFormat() report.Format {
	f, _ := report.ParseFormat(format)
	return f
}

func writeValues(w io.Writer, values []float64) error {
	switch outputFormat() {
	case report.FormatJSON:
		return report.WriteJSON(w, values)
	case report.FormatYAML:
		return report.WriteYAML(w, values)
	}
	_, err := fmt.Fprintln(w, report.FormatList(values))
	return err
}

func writeValue(w io.Writer, name string, v dataset.Value) error {
	switch outputFormat() {
	case report.FormatJSON:
		return report.WriteJSON(w, metrics.Result{Name: name, Value: v})
	case report.FormatYAML:
		return report.WriteYAML(w, metrics.Result{Name: name, Value: v})
	}
	_, err := fmt.Fprintln(w, v.String())
	return err
}

func runSummary(cmd *cobra.Command, args []string) error {
	return withAnalyzer(cmd, args, func(a *dataset.Analyzer, cfg *config.Config) error {
		opts := report.Options{
			Percentiles:   cfg.Percentiles,
			CorrelateWith: cfg.CorrelateWith,
		}
		if with != "" {
			other, err := input.ParseArgs([]string{with})
			if err != nil {
				return fmt.Errorf("--with: %w", err)
			}
			opts.CorrelateWith = other
		}
		return report.Write(cmd.OutOrStdout(), report.Build(a, opts), outputFormat())
	})
}

func runMetric(cmd *cobra.Command, args []string) error {
	name := args[0]
	fn, err := metrics.NewRegistry().Get(name)
	if err != nil {
		return err
	}
	return withAnalyzer(cmd, args[1:], func(a *dataset.Analyzer, _ *config.Config) error {
		return writeValue(cmd.OutOrStdout(), name, fn(a))
	})
}

func runPercentile(cmd *cobra.Command, args []string) error {
	p, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("percentile %q: %w", args[0], errdefs.ErrInvalidArgument)
	}
	return withAnalyzer(cmd, args[1:], func(a *dataset.Analyzer, _ *config.Config) error {
		return writeValue(cmd.OutOrStdout(), "p"+args[0], a.Percentile(p))
	})
}

func runOutliers(cmd *cobra.Command, args []string) error {
	return withAnalyzer(cmd, args, func(a *dataset.Analyzer, cfg *config.Config) error {
		k := cfg.OutlierFactor
		if cmd.Flags().Changed("factor") {
			k = factor
		}
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("outlier factor %v must be finite: %w", k, errdefs.ErrInvalidArgument)
		}
		before := a.Len()
		removed := a.RemoveOutliers(k)
		log.G(cmd.Context()).WithFields(log.Fields{
			"factor":  k,
			"before":  before,
			"removed": removed,
		}).Info("outliers removed")
		return writeValues(cmd.OutOrStdout(), a.Data())
	})
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	return withAnalyzer(cmd, args, func(a *dataset.Analyzer, cfg *config.Config) error {
		other := cfg.CorrelateWith
		if with != "" {
			var err error
			if other, err = input.ParseArgs([]string{with}); err != nil {
				return fmt.Errorf("--with: %w", err)
			}
		}
		if len(other) == 0 {
			return fmt.Errorf("no sequence to correlate against, use --with: %w", errdefs.ErrInvalidArgument)
		}
		return writeValue(cmd.OutOrStdout(), "correlation", a.Correlation(other))
	})
}

func runPlot(cmd *cobra.Command, args []string) error {
	return withAnalyzer(cmd, args, func(a *dataset.Analyzer, cfg *config.Config) error {
		opts := report.PlotOptions{
			Height:  cfg.Plot.Height,
			Width:   cfg.Plot.Width,
			Caption: "values in insertion order",
		}
		if plotHeight > 0 {
			opts.Height = plotHeight
		}
		if plotWidth > 0 {
			opts.Width = plotWidth
		}

		values := a.Data()
		if sorted {
			values = a.SortData()
			opts.Caption = "values sorted"
		}

		if svg {
			mean, _ := a.Mean().Get()
			out, err := report.SVG(values, opts.Width*10, opts.Height*20, &mean)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		}

		graph, err := report.Plot(values, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), graph)
		return err
	})
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNT\tDATA")

	for _, name := range config.ListPresets() {
		a, err := config.GetPreset(name).Analyzer()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, a.Len(), report.FormatList(a.Data()))
	}

	return w.Flush()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	return withAnalyzer(cmd, args, func(a *dataset.Analyzer, cfg *config.Config) error {
		return tui.RunInteractive(a, cfg)
	})
}
