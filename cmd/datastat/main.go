package main

import (
	"fmt"
	"os"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/datastat/internal/config"
	"github.com/san-kum/datastat/internal/dataset"
	"github.com/san-kum/datastat/internal/metrics"
	"github.com/san-kum/datastat/internal/report"
)

var (
	configFile string
	preset     string
	dataFile   string
	format     string
	logLevel   string
	// outliers
	factor float64
	// correlate
	with string
	// plot
	sorted     bool
	svg        bool
	plotHeight int
	plotWidth  int
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(numericArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datastat",
		Short:         "descriptive statistics for a list of numbers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.L.Logger.SetOutput(cmd.ErrOrStderr())
			if err := log.SetLevel(logLevel); err != nil {
				return fmt.Errorf("log level %q: %w", logLevel, errdefs.ErrInvalidArgument)
			}
			_, err := report.ParseFormat(format)
			return err
		},
		Args: cobra.ArbitraryArgs,
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a built-in sample dataset")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "read numbers from a file, - for stdin")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	summaryCmd := &cobra.Command{
		Use:   "summary [numbers...]",
		Short: "print every metric, mode and percentiles",
		RunE:  runSummary,
	}
	summaryCmd.Flags().StringVar(&with, "with", "", "also correlate against this sequence")

	metricCmd := &cobra.Command{
		Use:   "metric [name] [numbers...]",
		Short: "print a single metric",
		Long:  "print a single metric; one of: " + fmt.Sprint(metrics.NewRegistry().Names()),
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMetric,
	}

	percentileCmd := &cobra.Command{
		Use:   "percentile [p] [numbers...]",
		Short: "print the p-th percentile (0-100)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPercentile,
	}

	sortCmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "print values in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAnalyzer(cmd, args, func(a *dataset.Analyzer, _ *config.Config) error {
				return writeValues(cmd.OutOrStdout(), a.SortData())
			})
		},
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [numbers...]",
		Short: "scale values into [0, 1]",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAnalyzer(cmd, args, func(a *dataset.Analyzer, _ *config.Config) error {
				return writeValues(cmd.OutOrStdout(), a.Normalize())
			})
		},
	}

	modeCmd := &cobra.Command{
		Use:   "mode [numbers...]",
		Short: "print the most frequent values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAnalyzer(cmd, args, func(a *dataset.Analyzer, _ *config.Config) error {
				return writeValues(cmd.OutOrStdout(), a.Mode())
			})
		},
	}

	outliersCmd := &cobra.Command{
		Use:   "outliers [numbers...]",
		Short: "drop values outside the IQR fences and print the rest",
		RunE:  runOutliers,
	}
	outliersCmd.Flags().Float64Var(&factor, "factor", dataset.DefaultOutlierFactor, "IQR multiplier")

	correlateCmd := &cobra.Command{
		Use:   "correlate [numbers...]",
		Short: "pearson correlation against --with",
		RunE:  runCorrelate,
	}
	correlateCmd.Flags().StringVar(&with, "with", "", "comma separated sequence to correlate against")

	plotCmd := &cobra.Command{
		Use:   "plot [numbers...]",
		Short: "plot values",
		RunE:  runPlot,
	}
	plotCmd.Flags().BoolVar(&sorted, "sorted", false, "plot values in ascending order")
	plotCmd.Flags().BoolVar(&svg, "svg", false, "write an SVG chart with the mean marked")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height (default from config)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in sample datasets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	interactiveCmd := &cobra.Command{
		Use:   "interactive [numbers...]",
		Short: "edit the dataset interactively",
		RunE:  runInteractive,
	}

	rootCmd.AddCommand(summaryCmd, metricCmd, percentileCmd, sortCmd, normalizeCmd, modeCmd,
		outliersCmd, correlateCmd, plotCmd, presetsCmd, interactiveCmd)

	return rootCmd
}
