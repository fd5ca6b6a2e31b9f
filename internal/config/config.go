// Package config holds the viper-backed configuration for crewplan: default
// document paths, solver behavior, logging, and report rendering. Values come
// from (in priority order) command-line flags, CREWPLAN_* environment
// variables, the config file, and built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete crewplan configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// PathsConfig controls the default document locations
type PathsConfig struct {
	// Input is the default input document path (roster + tasks)
	Input string `mapstructure:"input"`
	// Output is the default result document path
	Output string `mapstructure:"output"`
	// LogFile is where JSON logs are written; empty means stderr
	LogFile string `mapstructure:"log_file"`
}

// SolverConfig controls the team-formation run
type SolverConfig struct {
	// Workers is the number of tasks solved concurrently (0 = one per CPU)
	Workers int `mapstructure:"workers"`
	// Strict makes input diagnostics fatal instead of warnings
	Strict bool `mapstructure:"strict"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// ReportConfig controls the post-run terminal summary
type ReportConfig struct {
	// Enabled controls whether the summary table is printed (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Width overrides the detected terminal width (0 = auto-detect)
	Width int `mapstructure:"width"`
}

// Default returns the built-in configuration defaults. The input and output
// defaults mirror the established CLI behavior: test/task.yaml in, result.yaml
// out.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Input:  filepath.Join("test", "task.yaml"),
			Output: "result.yaml",
		},
		Solver: SolverConfig{
			Workers: 0,
			Strict:  false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Report: ReportConfig{
			Enabled: true,
			Width:   0,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("paths.input", defaults.Paths.Input)
	viper.SetDefault("paths.output", defaults.Paths.Output)
	viper.SetDefault("paths.log_file", defaults.Paths.LogFile)

	viper.SetDefault("solver.workers", defaults.Solver.Workers)
	viper.SetDefault("solver.strict", defaults.Solver.Strict)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("report.enabled", defaults.Report.Enabled)
	viper.SetDefault("report.width", defaults.Report.Width)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "crewplan")
	}
	// Fall back to ~/.config/crewplan
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crewplan"
	}
	return filepath.Join(home, ".config", "crewplan")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
