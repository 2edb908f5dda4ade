package qec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the three demonstration parameters plus sampler knobs.
type Config struct {
	// State selects the logical state to protect: zero, one or plus.
	State string `yaml:"state" json:"state"`

	// ErrorOn is the physical qubit that receives the injected bit flip.
	ErrorOn int `yaml:"error_on" json:"error_on"`

	// Shots is the number of simulated measurement trials.
	Shots int `yaml:"shots" json:"shots"`

	// Seed fixes the sampler stream; zero draws a fresh one per run.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Workers bounds how many goroutines the backend may batch shots over.
	Workers int `yaml:"workers" json:"workers"`

	// Plain disables color in the rendered histogram.
	Plain bool `yaml:"plain" json:"plain"`
}

// NewConfig returns the demonstration defaults: protect |0⟩, flip the
// middle qubit, 1024 shots.
func NewConfig() *Config {
	return &Config{
		State:   "zero",
		ErrorOn: 1,
		Shots:   1024,
		Workers: 1,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Validate surfaces every invalid argument before any simulation work.
func (c *Config) Validate() error {
	if _, err := ParseLogicalState(c.State); err != nil {
		return err
	}
	if c.ErrorOn < 0 || c.ErrorOn >= CodeQubits {
		return fmt.Errorf("error target %d: %w", c.ErrorOn, ErrInvalidTarget)
	}
	if c.Shots <= 0 {
		return fmt.Errorf("%d shots: %w", c.Shots, ErrInvalidShots)
	}
	return nil
}

// LogicalState parses the configured selector.
func (c *Config) LogicalState() (LogicalState, error) {
	return ParseLogicalState(c.State)
}
