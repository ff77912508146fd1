package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = ".ardusim"
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 80
)

type Config struct {
	DataDir string     `yaml:"data_dir"`
	Metrics bool       `yaml:"metrics"`
	Plot    PlotConfig `yaml:"plot"`
	Show    ShowConfig `yaml:"show"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

type ShowConfig struct {
	// Color disables lipgloss styling when false.
	Color bool `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Metrics: true,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
		Show: ShowConfig{Color: true},
	}
}

// Load reads a YAML config on top of DefaultConfig, so keys missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
