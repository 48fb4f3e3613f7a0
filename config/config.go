// SPDX-License-Identifier: MIT
// Package: eqpaths/config
//
// config.go - Config, defaults, TOML decoding and validation.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/eqpaths/dijkstra"
	"github.com/katalvlaran/eqpaths/distinct"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the complete run configuration.
type Config struct {
	MaxPaths  int     `toml:"max_paths"`
	Tolerance float64 `toml:"tolerance"`
	Workers   int     `toml:"workers"`
	Format    string  `toml:"format"`
	Color     bool    `toml:"color"`
	LogLevel  string  `toml:"log_level"`
	Search    Search  `toml:"search"`
}

// Search bounds every single search. Zero means unlimited.
type Search struct {
	MaxDistance      float64 `toml:"max_distance"`
	InfEdgeThreshold float64 `toml:"inf_edge_threshold"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxPaths:  distinct.DefaultMaxPaths,
		Tolerance: 0,
		Workers:   runtime.GOMAXPROCS(0),
		Format:    FormatText,
		Color:     false,
		LogLevel:  "info",
	}
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Decode(data)
}

// Decode parses TOML data on top of Default and validates the result.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field. The first violation is returned wrapped with
// ErrInvalid and the TOML key name.
func (c Config) Validate() error {
	switch {
	case c.MaxPaths < 1:
		return fmt.Errorf("%w: max_paths=%d, must be ≥ 1", ErrInvalid, c.MaxPaths)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance):
		return fmt.Errorf("%w: tolerance=%g, must be ≥ 0", ErrInvalid, c.Tolerance)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers=%d, must be ≥ 1", ErrInvalid, c.Workers)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: format=%q, must be %q or %q", ErrInvalid, c.Format, FormatText, FormatJSON)
	case !validLevel(c.LogLevel):
		return fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel)
	case c.Search.MaxDistance < 0 || math.IsNaN(c.Search.MaxDistance):
		return fmt.Errorf("%w: search.max_distance=%g, must be ≥ 0", ErrInvalid, c.Search.MaxDistance)
	case c.Search.InfEdgeThreshold < 0 || math.IsNaN(c.Search.InfEdgeThreshold):
		return fmt.Errorf("%w: search.inf_edge_threshold=%g, must be ≥ 0", ErrInvalid, c.Search.InfEdgeThreshold)
	}

	return nil
}

func validLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}

	return false
}

// SearchOptions converts the [search] table into dijkstra options.
// Zero values are left out.
func (c Config) SearchOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if c.Search.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.Search.MaxDistance))
	}
	if c.Search.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.Search.InfEdgeThreshold))
	}

	return opts
}

// FinderOptions converts the configuration into distinct options.
func (c Config) FinderOptions() []distinct.Option {
	return []distinct.Option{
		distinct.WithMaxPaths(c.MaxPaths),
		distinct.WithCostTolerance(c.Tolerance),
		distinct.WithSearchOptions(c.SearchOptions()...),
	}
}
