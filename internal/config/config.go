// Package config holds the analysis configuration. A JSON file can
// override any field; omitted fields fall back to defaults through the
// Get* methods, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultScenarios are the flight conditions analyzed when no override is
// given, in processing order.
var DefaultScenarios = []string{"cruising", "climbing", "rolling", "descending"}

// DefaultSampleRate is the telemetry write rate in samples per second.
const DefaultSampleRate = 5.0

// AnalysisConfig represents the root configuration for a run.
type AnalysisConfig struct {
	SampleRateHz *float64 `json:"sample_rate_hz,omitempty"`
	Scenarios    []string `json:"scenarios,omitempty"`
	DataDir      *string  `json:"data_dir,omitempty"`
	OutputDir    *string  `json:"output_dir,omitempty"`
	HTMLReport   *bool    `json:"html_report,omitempty"`
}

// Load reads an AnalysisConfig from a JSON file.
func Load(path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &AnalysisConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *AnalysisConfig) Validate() error {
	if c.SampleRateHz != nil && *c.SampleRateHz <= 0 {
		return fmt.Errorf("sample_rate_hz must be positive, got %f", *c.SampleRateHz)
	}
	for _, s := range c.Scenarios {
		if s == "" {
			return fmt.Errorf("scenario names must be non-empty")
		}
	}
	return nil
}

// GetSampleRate returns the sample rate in Hz or the default.
func (c *AnalysisConfig) GetSampleRate() float64 {
	if c.SampleRateHz == nil {
		return DefaultSampleRate
	}
	return *c.SampleRateHz
}

// GetScenarios returns the scenario list or the default set.
func (c *AnalysisConfig) GetScenarios() []string {
	if len(c.Scenarios) == 0 {
		return DefaultScenarios
	}
	return c.Scenarios
}

// GetDataDir returns the directory holding input logs, default ".".
func (c *AnalysisConfig) GetDataDir() string {
	if c.DataDir == nil || *c.DataDir == "" {
		return "."
	}
	return *c.DataDir
}

// GetOutputDir returns the directory for rendered reports, default ".".
func (c *AnalysisConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "."
	}
	return *c.OutputDir
}

// GetHTMLReport reports whether the supplemental HTML charts are written.
func (c *AnalysisConfig) GetHTMLReport() bool {
	if c.HTMLReport == nil {
		return false
	}
	return *c.HTMLReport
}

// DataFile returns the expected input path for a scenario.
func (c *AnalysisConfig) DataFile(scenario string) string {
	return filepath.Join(c.GetDataDir(), scenario+"_data.txt")
}

// PlotFile returns the PNG output path for a scenario.
func (c *AnalysisConfig) PlotFile(scenario string) string {
	return filepath.Join(c.GetOutputDir(), scenario+"_analysis.png")
}

// HTMLFile returns the HTML output path for a scenario.
func (c *AnalysisConfig) HTMLFile(scenario string) string {
	return filepath.Join(c.GetOutputDir(), scenario+"_analysis.html")
}
