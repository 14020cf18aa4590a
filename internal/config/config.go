// Package config resolves run settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

// EnvPrefix prefixes every environment override, e.g. INTGRAPH_OUTPUT.
const EnvPrefix = "INTGRAPH"

// Config holds the resolved settings of one run.
type Config struct {
	InputDir string  `mapstructure:"input_dir"`
	Output   string  `mapstructure:"output"`
	Column   int     `mapstructure:"column"`
	Rows     int     `mapstructure:"rows"`
	XScale   float64 `mapstructure:"x_scale"`
	Flat     string  `mapstructure:"flat"`
	Debug    bool    `mapstructure:"debug"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"config":    "config",
	"input-dir": "input_dir",
	"output":    "output",
	"column":    "column",
	"rows":      "rows",
	"x-scale":   "x_scale",
	"flat":      "flat",
	"debug":     "debug",
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("input_dir", intgraph.DefaultInputDir)
	v.SetDefault("output", intgraph.DefaultOutputPath)
	v.SetDefault("column", intgraph.DefaultColumn)
	v.SetDefault("rows", intgraph.DefaultRowCount)
	v.SetDefault("x_scale", intgraph.DefaultXScale)
	v.SetDefault("flat", string(sampler.FlatError))
	v.SetDefault("debug", false)
	return v
}

// BindFlags binds every known flag present in fs to its config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file named by the "config" key and
// returns the validated settings. Flags override environment, which
// overrides the file, which overrides defaults.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Column < 0 {
		return fmt.Errorf("column must be >= 0, got %d", cfg.Column)
	}
	if cfg.Rows <= 0 {
		return fmt.Errorf("rows must be > 0, got %d", cfg.Rows)
	}
	if cfg.XScale <= 0 {
		return fmt.Errorf("x_scale must be > 0, got %g", cfg.XScale)
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if _, err := sampler.ParseFlatPolicy(cfg.Flat); err != nil {
		return err
	}
	return nil
}

// InputPath resolves an image name against the input directory.
func (c *Config) InputPath(name string) string {
	return filepath.Join(c.InputDir, name)
}

// Options converts the settings into pipeline options.
func (c *Config) Options() intgraph.Options {
	column := c.Column
	flat, _ := sampler.ParseFlatPolicy(c.Flat)
	return intgraph.Options{
		Column:   &column,
		RowCount: c.Rows,
		XScale:   c.XScale,
		Flat:     flat,
	}
}
