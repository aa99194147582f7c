// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"firestige.xyz/ifreport/internal/core"
	"firestige.xyz/ifreport/internal/log"
	"firestige.xyz/ifreport/internal/report"
)

// Output formats accepted by the renderers.
var outputFormats = []string{"text", "json", "yaml"}

// Config is the tool configuration. Every field has a default, so a
// missing config file is not an error.
type Config struct {
	// Fields reported when the caller does not pass --fields.
	Fields []string `mapstructure:"fields"`
	// Output is the default rendering format: text | json | yaml.
	Output string     `mapstructure:"output"`
	Log    log.Config `mapstructure:"log"`
}

func Default() *Config {
	return &Config{
		Fields: report.Fields(),
		Output: "text",
		Log:    *log.DefaultConfig(),
	}
}

// Load reads the config file at path. A nonexistent file yields the
// defaults; a present but unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", core.ErrConfigInvalid, path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", core.ErrConfigInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return fmt.Errorf("%w: fields must not be empty", core.ErrConfigInvalid)
	}
	for _, f := range c.Fields {
		if !report.Supported(f) {
			return fmt.Errorf("%w: unsupported report field %q", core.ErrConfigInvalid, f)
		}
	}
	if !slices.Contains(outputFormats, c.Output) {
		return fmt.Errorf("%w: unsupported output format %q", core.ErrConfigInvalid, c.Output)
	}
	return nil
}
