package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Levels holds the heading depth assigned to each documentation unit.
type Levels struct {
	Class    int `yaml:"class"`
	Function int `yaml:"function"`
	Section  int `yaml:"section"`
}

// Config tunes the converter: heading depths and the set of recognized
// section labels. Label matching itself stays exact and case-sensitive
// regardless of configuration.
type Config struct {
	Levels   Levels   `yaml:"levels"`
	Sections []string `yaml:"sections"`
}

// DefaultConfig returns the stock configuration: class/function/section
// headings at depths 2/3/4 and the Google-style docstring labels.
func DefaultConfig() Config {
	return Config{
		Levels: Levels{Class: 2, Function: 3, Section: 4},
		Sections: []string{
			"Args:",
			"Attributes:",
			"Returns:",
			"Raises:",
			"Notes:",
			"Examples:",
		},
	}
}

// LoadConfig reads a YAML file over the defaults, so a config may set
// only the keys it cares about. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
