package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tavernkeep/internal/world"
)

const DefaultPath = "tavernkeep.yaml"

const (
	DriverNone     = "none"
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type ProjectConfig struct {
	Project      string         `yaml:"project"`
	Version      int            `yaml:"version"`
	Store        StoreConfig    `yaml:"store"`
	Log          LogConfig      `yaml:"log"`
	REPL         REPLConfig     `yaml:"repl"`
	Demographics map[string]int `yaml:"demographics,omitempty"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn,omitempty"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type REPLConfig struct {
	Render      *bool  `yaml:"render,omitempty"`
	HistoryFile string `yaml:"history_file,omitempty"`
}

// RenderMarkdown reports whether output should go through the markdown
// renderer. It defaults to true.
func (r REPLConfig) RenderMarkdown() bool {
	return r.Render == nil || *r.Render
}

// DefaultConfig is the configuration written by `tavernkeep init`.
func DefaultConfig(project string) *ProjectConfig {
	render := true
	return &ProjectConfig{
		Project: project,
		Version: 1,
		Store:   StoreConfig{Driver: DriverBolt, DSN: "tavernkeep.db"},
		Log:     LogConfig{Level: "info", Encoding: "console"},
		REPL:    REPLConfig{Render: &render, HistoryFile: ".tavernkeep_history"},
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

// Write saves cfg to path, refusing to replace an existing file.
func Write(path string, cfg *ProjectConfig) error {
	if err := validateProjectConfig(cfg); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing project config: %w", err)
	}
	return f.Close()
}

func applyDefaults(cfg *ProjectConfig) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverNone
	}
	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	switch cfg.Store.Driver {
	case DriverNone, DriverMemory:
	case DriverBolt, DriverSQLite, DriverPostgres:
		if strings.TrimSpace(cfg.Store.DSN) == "" {
			return fmt.Errorf("store dsn is required for driver %s", cfg.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	switch strings.ToLower(cfg.Log.Encoding) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log encoding: %s", cfg.Log.Encoding)
	}

	if _, err := cfg.SpeciesWeights(); err != nil {
		return err
	}
	return nil
}

// SpeciesWeights returns the configured population mix, or the default mix
// when none is configured.
func (cfg *ProjectConfig) SpeciesWeights() (world.Demographics, error) {
	if len(cfg.Demographics) == 0 {
		return world.DefaultDemographics(), nil
	}

	weights := make(map[world.Species]int, len(cfg.Demographics))
	for name, weight := range cfg.Demographics {
		var species world.Species
		if err := species.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
			return world.Demographics{}, fmt.Errorf("demographics: %w", err)
		}
		weights[species] = weight
	}

	d, err := world.NewDemographics(weights)
	if err != nil {
		return world.Demographics{}, fmt.Errorf("demographics: %w", err)
	}
	return d, nil
}
