package config

import (
	"fmt"
	"math"
	"os"

	"github.com/containerd/errdefs"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/datastat/internal/dataset"
)

const (
	DefaultOutlierFactor = dataset.DefaultOutlierFactor
	DefaultPlotHeight    = 10
	DefaultPlotWidth     = 60
)

type Config struct {
	// Data is kept untyped so a malformed YAML value surfaces through
	// dataset.Analyzer.AddValues instead of as a decode error.
	Data          any        `yaml:"data,omitempty"`
	OutlierFactor float64    `yaml:"outlier_factor"`
	Percentiles   []float64  `yaml:"percentiles"`
	CorrelateWith []float64  `yaml:"correlate_with,omitempty"`
	Plot          PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		OutlierFactor: DefaultOutlierFactor,
		Percentiles:   []float64{25, 50, 75, 90, 95, 99},
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if math.IsNaN(cfg.OutlierFactor) || math.IsInf(cfg.OutlierFactor, 0) {
		return nil, fmt.Errorf("outlier_factor %v must be finite: %w", cfg.OutlierFactor, errdefs.ErrInvalidArgument)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Analyzer returns a new Analyzer seeded with the configured data.
func (c *Config) Analyzer() (*dataset.Analyzer, error) {
	a := dataset.New()
	if c.Data == nil {
		return a, nil
	}
	if err := a.AddValues(c.Data); err != nil {
		return nil, fmt.Errorf("config data: %w", err)
	}
	return a, nil
}
