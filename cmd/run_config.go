package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is everything a simulation run needs. It is assembled from, in
// increasing precedence: built-in defaults, the YAML run file, BIKESHARE_*
// environment variables and explicitly set flags.
type RunConfig struct {
	Stations string `yaml:"stations" env:"STATIONS"`
	Rides    string `yaml:"rides" env:"RIDES"`
	Start    string `yaml:"start" env:"START"` // YYYY-MM-DD HH:MM
	End      string `yaml:"end" env:"END"`     // YYYY-MM-DD HH:MM
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Trace    string `yaml:"trace" env:"TRACE"`
	Results  string `yaml:"results" env:"RESULTS"` // JSON report path, empty to skip
	Frames   string `yaml:"frames" env:"FRAMES"`   // JSON-lines frame path, empty to skip
}

// defaultRunConfig returns the built-in defaults.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Stations: "stations.json",
		Rides:    "rides.csv",
		LogLevel: "error",
		Trace:    "none",
	}
}

// loadRunConfig decodes the YAML run file at path on top of base.
// Uses strict field checking: unknown keys are an error.
func loadRunConfig(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading run config: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks the fields every run needs.
func (c RunConfig) validate() error {
	if c.Stations == "" {
		return fmt.Errorf("station file not provided")
	}
	if c.Rides == "" {
		return fmt.Errorf("ride file not provided")
	}
	if c.Start == "" || c.End == "" {
		return fmt.Errorf("simulation window not provided (start=%q, end=%q)", c.Start, c.End)
	}
	return nil
}
