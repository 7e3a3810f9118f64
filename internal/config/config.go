// Package config implements the configuration surface of spec.md §6:
// the strategy keys that drive the type mapper, lowering, and emitter.
// Loading is grounded on the teacher's cobra-based flag style
// (cmd/dwscript/cmd/compile.go's package-level flag vars bound in init())
// plus two file formats pulled from the rest of the retrieval pack:
// YAML via goccy/go-yaml and TOML via BurntSushi/toml.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// NumberStrategy selects the target type for the `number` primitive.
type NumberStrategy string

const (
	NumberFloat64     NumberStrategy = "float64"
	NumberInt         NumberStrategy = "int"
	NumberContextual  NumberStrategy = "contextual"
)

// UnionStrategy selects the lowering of union types.
type UnionStrategy string

const (
	UnionTagged    UnionStrategy = "tagged"
	UnionInterface UnionStrategy = "interface"
	UnionAny       UnionStrategy = "any"
)

// NullabilityStrategy selects the representation of optional/nullable values.
type NullabilityStrategy string

const (
	NullabilityPointer   NullabilityStrategy = "pointer"
	NullabilityZero      NullabilityStrategy = "zero"
	NullabilitySQLNull   NullabilityStrategy = "sqlNull"
)

// AsyncStrategy selects the lowering of async/await. Only Sync is fully
// specified by the core; Future and Errgroup are accepted but degrade to
// Sync behavior (spec.md §9: "implementations may stub these strategies
// to the sync behavior without violating this spec").
type AsyncStrategy string

const (
	AsyncSync     AsyncStrategy = "sync"
	AsyncFuture   AsyncStrategy = "future"
	AsyncErrgroup AsyncStrategy = "errgroup"
)

// ErrorHandling selects the try/catch lowering shape.
type ErrorHandling string

const (
	ErrorReturn ErrorHandling = "return"
	ErrorPanic  ErrorHandling = "panic"
)

// Config is the full strategy configuration consumed by lowering, the
// type mapper, the optimizer, and the emitter.
type Config struct {
	NumberStrategy       NumberStrategy       `yaml:"numberStrategy" toml:"numberStrategy" json:"numberStrategy"`
	UnionStrategy        UnionStrategy        `yaml:"unionStrategy" toml:"unionStrategy" json:"unionStrategy"`
	NullabilityStrategy  NullabilityStrategy  `yaml:"nullabilityStrategy" toml:"nullabilityStrategy" json:"nullabilityStrategy"`
	AsyncStrategy        AsyncStrategy        `yaml:"asyncStrategy" toml:"asyncStrategy" json:"asyncStrategy"`
	ErrorHandling        ErrorHandling        `yaml:"errorHandling" toml:"errorHandling" json:"errorHandling"`
	OptimizationLevel    int                  `yaml:"optimizationLevel" toml:"optimizationLevel" json:"optimizationLevel"`
	Strict               bool                 `yaml:"strict" toml:"strict" json:"strict"`
	AllowAny             bool                 `yaml:"allowAny" toml:"allowAny" json:"allowAny"`
	UsePointerReceivers  bool                 `yaml:"usePointerReceivers" toml:"usePointerReceivers" json:"usePointerReceivers"`
	GenerateRuntime      bool                 `yaml:"generateRuntime" toml:"generateRuntime" json:"generateRuntime"`
	SourceMap            bool                 `yaml:"sourceMap" toml:"sourceMap" json:"sourceMap"`
}

// Default returns the spec-mandated default configuration: float64
// numbers, tagged unions, pointer nullability, synchronous async
// lowering, error-return try/catch, optimization level 1.
func Default() *Config {
	return &Config{
		NumberStrategy:      NumberFloat64,
		UnionStrategy:       UnionTagged,
		NullabilityStrategy: NullabilityPointer,
		AsyncStrategy:       AsyncSync,
		ErrorHandling:       ErrorReturn,
		OptimizationLevel:   1,
		UsePointerReceivers: true,
	}
}

// Load reads a .ts2go.yaml or .ts2go.toml file from dir, falling back to
// Default() when neither exists. YAML is tried first, matching the
// teacher's preference order for its own (indirect) go-yaml dependency.
func Load(dir string) (*Config, error) {
	cfg := Default()

	yamlPath := dir + "/.ts2go.yaml"
	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", yamlPath, err)
		}
		return cfg, nil
	}

	tomlPath := dir + "/.ts2go.toml"
	if data, err := os.ReadFile(tomlPath); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", tomlPath, err)
		}
		return cfg, nil
	}

	return cfg, nil
}

// Validate rejects unrecognized strategy values so a typo in a config file
// fails fast rather than silently falling through a switch's default case
// somewhere deep in the type mapper.
func (c *Config) Validate() error {
	var bad []string
	switch c.NumberStrategy {
	case NumberFloat64, NumberInt, NumberContextual:
	default:
		bad = append(bad, fmt.Sprintf("numberStrategy=%q", c.NumberStrategy))
	}
	switch c.UnionStrategy {
	case UnionTagged, UnionInterface, UnionAny:
	default:
		bad = append(bad, fmt.Sprintf("unionStrategy=%q", c.UnionStrategy))
	}
	switch c.NullabilityStrategy {
	case NullabilityPointer, NullabilityZero, NullabilitySQLNull:
	default:
		bad = append(bad, fmt.Sprintf("nullabilityStrategy=%q", c.NullabilityStrategy))
	}
	switch c.AsyncStrategy {
	case AsyncSync, AsyncFuture, AsyncErrgroup:
	default:
		bad = append(bad, fmt.Sprintf("asyncStrategy=%q", c.AsyncStrategy))
	}
	switch c.ErrorHandling {
	case ErrorReturn, ErrorPanic:
	default:
		bad = append(bad, fmt.Sprintf("errorHandling=%q", c.ErrorHandling))
	}
	if c.OptimizationLevel < 0 || c.OptimizationLevel > 2 {
		bad = append(bad, fmt.Sprintf("optimizationLevel=%d", c.OptimizationLevel))
	}
	if len(bad) > 0 {
		return fmt.Errorf("config: invalid value(s): %s", strings.Join(bad, ", "))
	}
	return nil
}
