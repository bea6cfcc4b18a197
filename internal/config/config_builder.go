package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from each source and merges them
// in order. Errors from every source are joined and reported by build.
type configBuilder struct {
	environ map[string]string
	flags   *flag.FlagSet
	args    []string

	configs []*StructuredConfig
	err     error
}

// newConfigBuilder reads the process environment and the command line.
func newConfigBuilder() *configBuilder {
	return &configBuilder{
		flags:   flag.CommandLine,
		args:    os.Args[1:],
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// load runs every source and validates the merged result with validate.
func (b *configBuilder) load(validate func(*StructuredConfig) error) (*StructuredConfig, error) {
	return b.withEnv().withFlags().withFile().buildWith(validate)
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	return b.buildWith((*StructuredConfig).validate)
}

func (b *configBuilder) buildWith(validate func(*StructuredConfig) error) (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv(b.environ))
}

func (b *configBuilder) withFlags() *configBuilder {
	if b.flags == nil {
		return b
	}
	return b.add(parseFlags(b.flags, b.args))
}

// withFile reads the config file named by the last source that set one.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}
	return b.add(parseFile(path))
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// GetStructuredConfig loads the server configuration. Sources are applied
// in order, later non-zero fields overriding earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file, JSON or YAML (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().load((*StructuredConfig).validate)
}

// GetStorageConfig loads configuration but only requires the storage
// settings. Used by offline tools such as the egg importer.
func GetStorageConfig() (*StructuredConfig, error) {
	return newConfigBuilder().load((*StructuredConfig).validateStorage)
}

// GetTokenConfig loads configuration but only requires the token settings.
func GetTokenConfig() (*StructuredConfig, error) {
	return newConfigBuilder().load((*StructuredConfig).validateApp)
}
