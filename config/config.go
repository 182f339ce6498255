// Package config loads simulator settings from an optional YAML file with
// RISK_ environment overrides.
package config

import (
	"fmt"
	"riskodds/meta"
	"strings"

	"github.com/spf13/viper"
)

type SimulationConfig struct {
	Simulations int `mapstructure:"simulations"`
	Goroutines  int `mapstructure:"goroutines"`
	// Seed fixes every worker's dice; 0 seeds them from the clock.
	Seed uint64 `mapstructure:"seed"`
}

type TableConfig struct {
	MaxAttackers int    `mapstructure:"max_attackers"`
	MaxDefenders int    `mapstructure:"max_defenders"`
	OutputDir    string `mapstructure:"output_dir"`
}

type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Table      TableConfig      `mapstructure:"table"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate reports every violated setting at once.
func (c Config) Validate() error {
	var errs []string

	if c.Simulation.Simulations <= 0 {
		errs = append(errs, fmt.Sprintf("simulation.simulations must be positive, got %d", c.Simulation.Simulations))
	}
	if c.Simulation.Goroutines <= 0 {
		errs = append(errs, fmt.Sprintf("simulation.goroutines must be positive, got %d", c.Simulation.Goroutines))
	}
	if c.Table.MaxAttackers <= 0 {
		errs = append(errs, fmt.Sprintf("table.max_attackers must be positive, got %d", c.Table.MaxAttackers))
	}
	if c.Table.MaxDefenders <= 0 {
		errs = append(errs, fmt.Sprintf("table.max_defenders must be positive, got %d", c.Table.MaxDefenders))
	}
	if c.Table.OutputDir == "" {
		errs = append(errs, "table.output_dir must not be empty")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads the config file at path, if any, applies RISK_ environment
// overrides on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("RISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.simulations", meta.SIMULATIONS)
	v.SetDefault("simulation.goroutines", meta.GO_ROUTINES)
	v.SetDefault("simulation.seed", 0)

	v.SetDefault("table.max_attackers", meta.MAX_ATTACKERS)
	v.SetDefault("table.max_defenders", meta.MAX_DEFENDERS)
	v.SetDefault("table.output_dir", meta.OUTPUT_DIR)

	v.SetDefault("logging.level", meta.LOG_LEVEL)
}
