package config

import "sort"

var Presets = map[string]*Config{
	"uniform": {
		Data: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	},
	"skewed": {
		Data: []float64{1, 1, 2, 2, 2, 3, 3, 4, 5, 7, 9, 14, 22, 35},
	},
	"outliers": {
		Data:          []float64{1, 2, 3, 4, 5, 100, -100},
		OutlierFactor: 1.5,
	},
	"bimodal": {
		Data: []float64{2, 3, 3, 3, 4, 10, 11, 11, 11, 12},
	},
	"constant": {
		Data: []float64{5, 5, 5, 5},
	},
	"linear": {
		Data:          []float64{1, 2, 3, 4, 5},
		CorrelateWith: []float64{2, 4, 6, 8, 10},
	},
}

// GetPreset returns a copy of the named preset over the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	if data, ok := p.Data.([]float64); ok {
		cfg.Data = append([]float64(nil), data...)
	}
	if p.OutlierFactor != 0 {
		cfg.OutlierFactor = p.OutlierFactor
	}
	if len(p.CorrelateWith) > 0 {
		cfg.CorrelateWith = append([]float64(nil), p.CorrelateWith...)
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
