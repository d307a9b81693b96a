package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// configBuilder collects one partial config per source and merges them in
// priority order on build.
type configBuilder struct {
	flags    *StructuredConfig
	env      *StructuredConfig
	json     *StructuredConfig
	defaults *StructuredConfig

	// args are the command-line arguments parsed by withFlags.
	args []string
	err  error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		args: os.Args[1:],
	}
}

// sources returns the collected configs, highest priority first.
func (b *configBuilder) sources() []*StructuredConfig {
	ordered := make([]*StructuredConfig, 0, 4)
	for _, cfg := range []*StructuredConfig{b.flags, b.env, b.json, b.defaults} {
		if cfg != nil {
			ordered = append(ordered, cfg)
		}
	}

	return ordered
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.sources() {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = &StructuredConfig{
		App: App{
			TokenIssuer:          "go-matjip",
			PasswordHashCost:     10,
			TagAllocationRetries: 5,
			ReviewPageSize:       10,
			LogLevel:             "debug",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 25,
			},
			Files: Files{
				IconDir:   "./data/icons",
				PublicURL: "/static/icons",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  5 << 20,
		},
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, by the
// environment.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.json = jsonCfg
	return b
}
