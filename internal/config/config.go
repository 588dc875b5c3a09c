package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config represents the optional movimientos.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
	CSV    CSVConfig    `yaml:"csv"`
}

// ReportConfig controls how the summary report is rendered and saved.
type ReportConfig struct {
	Currency     string `yaml:"currency"`
	OutputSuffix string `yaml:"output_suffix"`
}

// CSVConfig controls how statement files are read.
type CSVConfig struct {
	Delimiter string `yaml:"delimiter"` // single character, e.g. "," or ";"
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Currency:     "$",
			OutputSuffix: "_reporte.txt",
		},
		CSV: CSVConfig{
			Delimiter: ",",
		},
	}
}

// Load reads a movimientos.yaml file from disk. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	if c.Report.Currency == "" {
		return errors.New("report.currency must not be empty")
	}
	if c.Report.OutputSuffix == "" {
		return errors.New("report.output_suffix must not be empty")
	}
	return nil
}

// Delimiter returns the CSV field separator as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}
