package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/kzmdstu/tccalc/timecode"
	"github.com/pkg/errors"
)

// defaultConfig is read when neither -config nor TCCALC_CONFIG is given.
const defaultConfig = "tccalc.toml"

// Config holds answers that will be offered as defaults by the prompts.
type Config struct {
	Current  Side
	Delivery Side
}

// Side is the frame rate setup of either the current cut or the delivery.
// Zero Rate, nil Drop or empty Duration mean there is no default.
type Side struct {
	Rate     int
	Drop     *bool
	Duration string
}

// Env is read from TCCALC_* environment variables.
type Env struct {
	Config   string
	LogLevel string `split_words:"true"`
}

func loadEnv() (*Env, error) {
	env := &Env{}
	if err := envconfig.Process("tccalc", env); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	return env, nil
}

// loadConfig decodes a toml config file.
// A missing file is only an error when the path was asked for explicitly.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config file (toml)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %v", path)
	}
	return cfg, nil
}

// Validate checks the configured defaults.
func (c *Config) Validate() error {
	sides := []struct {
		name string
		side Side
	}{
		{"current", c.Current},
		{"delivery", c.Delivery},
	}
	for _, s := range sides {
		if s.side.Rate < 0 {
			return fmt.Errorf("%v.rate must not be negative: %v", s.name, s.side.Rate)
		}
		if s.side.Duration != "" {
			if err := timecode.Validate(s.side.Duration); err != nil {
				return fmt.Errorf("%v.duration: %v", s.name, err)
			}
		}
	}
	return nil
}
