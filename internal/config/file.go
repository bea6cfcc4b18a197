package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// parseFile reads a config file. JSON documents are valid YAML, so one
// decoder reads both formats. Durations are strings such as "30s"; unknown
// keys are rejected so a typo does not silently fall back to a default.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	cfg := &StructuredConfig{}
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return cfg, nil
}
