// Package config loads the segpath server configuration from YAML.
//
// Keys absent from the file keep their Default values. Load always validates.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/segpath/astar"
)

// ErrInvalidConfig is returned by Validate (and therefore Load) for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values.
const (
	DefaultAddr         = ":8000"
	DefaultMaxEdges     = 100000
	DefaultMaxBodyBytes = 8 << 20
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// DefaultAllowedOrigin is the single CORS origin allowed out of the box.
const DefaultAllowedOrigin = "http://localhost:3000"

// Config is the server configuration.
type Config struct {
	// Addr is the TCP listen address.
	Addr string `yaml:"addr"`
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxEdges caps available_path per request; 0 means unlimited.
	MaxEdges int `yaml:"max_edges"`
	// MaxBodyBytes caps the request body; 0 means unlimited.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// RelaxPolicy is "best-cost" or "frontier-scan".
	RelaxPolicy string `yaml:"relax_policy"`
	// Snap moves unknown start/goal points to the nearest vertex unless a request overrides it.
	Snap         bool          `yaml:"snap"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		AllowedOrigins: []string{DefaultAllowedOrigin},
		MaxEdges:       DefaultMaxEdges,
		MaxBodyBytes:   DefaultMaxBodyBytes,
		RelaxPolicy:    astar.RelaxBestCost.String(),
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the YAML file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if c.MaxEdges < 0 {
		return fmt.Errorf("%w: max_edges %d < 0", ErrInvalidConfig, c.MaxEdges)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: max_body_bytes %d < 0", ErrInvalidConfig, c.MaxBodyBytes)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	if _, err := astar.ParseRelaxPolicy(c.RelaxPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, o := range c.AllowedOrigins {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("%w: empty allowed origin", ErrInvalidConfig)
		}
	}

	return nil
}

// Policy returns the parsed relax policy. Call after Validate.
func (c Config) Policy() astar.RelaxPolicy {
	p, _ := astar.ParseRelaxPolicy(c.RelaxPolicy)

	return p
}
