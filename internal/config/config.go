// Package config loads the YAML settings of the hailstone command.
//
// Load starts from Default, overlays the file, and validates the result.
// Unknown keys are rejected so that typos surface as errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hailstone/catalog"
	"github.com/katalvlaran/hailstone/enctree"
	"github.com/katalvlaran/hailstone/internal/logging"
	"github.com/katalvlaran/hailstone/primes"
	"github.com/katalvlaran/hailstone/sequence"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// validate checks the struct-tag bounds below.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full settings tree.
type Config struct {
	Log      Log      `yaml:"log"`
	Sequence Sequence `yaml:"sequence"`
	Primes   Primes   `yaml:"primes"`
	Tree     Tree     `yaml:"tree"`
	Catalog  Catalog  `yaml:"catalog"`
}

// Log selects the diagnostics level and handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Sequence holds the default rule and run limits.
type Sequence struct {
	X             int64 `yaml:"x" validate:"ne=0"`
	Y             int64 `yaml:"y"`
	Z             int64 `yaml:"z"`
	MaxIterations int   `yaml:"max_iterations" validate:"gte=0"`
	MaxBits       int   `yaml:"max_bits" validate:"gt=0"`
	Compat        bool  `yaml:"compat"`
}

// Rule returns the configured rule.
func (s Sequence) Rule() sequence.Rule { return sequence.Rule{X: s.X, Y: s.Y, Z: s.Z} }

// Primes sizes the sieve and its caches.
type Primes struct {
	HardLimit       int `yaml:"hard_limit" validate:"gte=229"`
	PrimesCacheSize int `yaml:"primes_cache_size" validate:"gt=0"`
	FactorCacheSize int `yaml:"factor_cache_size" validate:"gt=0"`
}

// Options converts the section into primes.Service options.
func (p Primes) Options() []primes.Option {
	return []primes.Option{
		primes.WithHardLimit(p.HardLimit),
		primes.WithPrimesCacheSize(p.PrimesCacheSize),
		primes.WithFactorCacheSize(p.FactorCacheSize),
	}
}

// Tree bounds the reverse tree. ValueLimit 0 means unbounded.
type Tree struct {
	DepthLimit int   `yaml:"depth_limit" validate:"gte=0"`
	ValueLimit int64 `yaml:"value_limit" validate:"gte=0"`
	Shortcuts  bool  `yaml:"shortcuts"`
	KMax       int   `yaml:"k_max" validate:"gte=0"`
}

// Catalog holds the cycle scan settings.
type Catalog struct {
	Signature string `yaml:"signature" validate:"omitempty,oneof=binary length rotation"`
	MaxSteps  int    `yaml:"max_steps" validate:"gte=0"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: string(logging.FormatText)},
		Sequence: Sequence{
			X: sequence.Classic.X, Y: sequence.Classic.Y, Z: sequence.Classic.Z,
			MaxIterations: 1000,
			MaxBits:       sequence.DefaultMaxBits,
		},
		Primes: Primes{
			HardLimit:       primes.DefaultHardLimit,
			PrimesCacheSize: primes.DefaultPrimesCacheSize,
			FactorCacheSize: primes.DefaultFactorCacheSize,
		},
		Tree: Tree{
			DepthLimit: enctree.DefaultDepthLimit,
			ValueLimit: enctree.DefaultValueLimit,
			KMax:       64,
		},
		Catalog: Catalog{
			Signature: string(catalog.Binary),
			MaxSteps:  catalog.DefaultMaxSteps,
		},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Decode overlays YAML from r onto cfg, rejecting unknown keys.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	return enc.Close()
}

// Validate checks the tagged bounds of every section, then the names that
// the logging package parses itself.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %v", ErrInvalid, err)
	}

	return nil
}
