package interconnect

import (
	"regexp"

	"github.com/pkg/errors"
)

// Config controls the shape of the emitted module.
type Config struct {
	ModuleName string // Verilog module identifier
	Timescale  string // argument of the `timescale directive
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() *Config {
	return &Config{
		ModuleName: "axi_interconnect",
		Timescale:  "1ns / 1ps",
	}
}

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !identRegex.MatchString(c.ModuleName) {
		return errors.Errorf("interconnect: invalid module name %q", c.ModuleName)
	}
	if c.Timescale == "" {
		return errors.New("interconnect: empty timescale")
	}
	return nil
}

// Option adjusts a Config.
type Option func(*Config)

// WithModuleName sets the name of the generated module.
func WithModuleName(name string) Option {
	return func(c *Config) { c.ModuleName = name }
}

// WithTimescale sets the `timescale directive, e.g. "1ns / 1ps".
func WithTimescale(ts string) Option {
	return func(c *Config) { c.Timescale = ts }
}

func newConfig(opts []Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
