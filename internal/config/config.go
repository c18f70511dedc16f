// Package config loads the settings of the pipedemo command.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ib-77/pipeflow/pkg/pipe/observe"
)

const EnvPrefix = "PIPEFLOW"

type Config struct {
	Log  observe.Config `mapstructure:"log"`
	Demo DemoConfig     `mapstructure:"demo"`
}

type DemoConfig struct {
	// Lines is the number of goroutines fanning inputs through the flow.
	Lines  int   `mapstructure:"lines" validate:"min=1,max=64"`
	Inputs []int `mapstructure:"inputs" validate:"min=1,max=1000"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", observe.FormatConsole)
	v.SetDefault("log.timestamp", true)
	v.SetDefault("demo.lines", 2)
	v.SetDefault("demo.inputs", []int{1, 2, 3, 5, 8, 13})
}

// Load reads path (skipped when empty) and PIPEFLOW_* environment variables,
// e.g. PIPEFLOW_LOG_LEVEL or PIPEFLOW_DEMO_LINES.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Log.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validator.New().Struct(c.Demo); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
