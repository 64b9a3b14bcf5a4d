package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Chart selection modes for a comparison job.
const (
	ChartsAll         = "all"
	ChartsSpeedupOnly = "speedup-only"
)

// Job describes one baseline/comparison directory pair and where its
// artifacts go.
type Job struct {
	Name            string `yaml:"name"`
	BaselineDir     string `yaml:"baseline_dir"`
	ComparisonDir   string `yaml:"comparison_dir"`
	BaselineLabel   string `yaml:"baseline_label"`
	ComparisonLabel string `yaml:"comparison_label"`
	OutputDir       string `yaml:"output_dir"`
	Traces          int    `yaml:"traces"` // expected trace count, 0 = default
	Charts          string `yaml:"charts"` // "all" (default) or "speedup-only"
}

// JobsConfig is the full jobs YAML structure.
type JobsConfig struct {
	Version string `yaml:"version"`
	Jobs    []Job  `yaml:"jobs"`
}

// applyDefaults fills a job's optional fields.
func (j *Job) applyDefaults() {
	if j.BaselineLabel == "" {
		j.BaselineLabel = "baseline"
	}
	if j.ComparisonLabel == "" {
		j.ComparisonLabel = "comparison"
	}
	if j.Traces <= 0 {
		j.Traces = 4
	}
	if j.Charts == "" {
		j.Charts = ChartsAll
	}
}

// validate rejects jobs that cannot run at all.
func (j *Job) validate() error {
	if j.BaselineDir == "" || j.ComparisonDir == "" {
		return fmt.Errorf("job %q: baseline_dir and comparison_dir are required", j.Name)
	}
	if j.OutputDir == "" {
		return fmt.Errorf("job %q: output_dir is required", j.Name)
	}
	if j.Charts != ChartsAll && j.Charts != ChartsSpeedupOnly {
		return fmt.Errorf("job %q: unknown charts mode %q", j.Name, j.Charts)
	}
	return nil
}

// LoadJobsConfig reads and strictly parses a jobs YAML file: unknown fields
// are errors, so a typo cannot silently drop a setting.
func LoadJobsConfig(path string) (*JobsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs config: %w", err)
	}

	var cfg JobsConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse jobs config %s: %w", path, err)
	}
	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("jobs config %s declares no jobs", path)
	}

	for i := range cfg.Jobs {
		cfg.Jobs[i].applyDefaults()
		if err := cfg.Jobs[i].validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
