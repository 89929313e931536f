// Package config provides configuration loading and management for namekit.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openrig/namekit/normalizer"
	"github.com/openrig/namekit/symbols"
)

// ErrInvalidConfig is wrapped by every structural validation failure, so
// callers can distinguish a malformed document from an I/O problem.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete namekit configuration
type Config struct {
	Naming  NamingConfig  `yaml:"naming"`
	Rigging RiggingConfig `yaml:"rigging"`
}

// NamingConfig defines the naming convention: token order, separator,
// per-token rules and normalizers, and whole-name constraints.
type NamingConfig struct {
	// Separator joins token values into a name (e.g. "_")
	Separator string `yaml:"separator"`
	// Tokens is the ordered list of token names
	Tokens []string `yaml:"tokens"`
	// Rules maps token names to their validation rule
	Rules map[string]RuleConfig `yaml:"rules"`
	// Normalizers maps token names to a registered normalizer name
	Normalizers map[string]string `yaml:"normalizers"`
	// Global holds constraints over fully assembled names
	Global GlobalConfig `yaml:"global"`
}

// RuleConfig is the serialized form of a single token rule. Type selects
// the rule kind; the other fields are payload for that kind.
type RuleConfig struct {
	// Type is the rule kind: "regex", "list", or "from_enums"
	Type string `yaml:"type"`
	// Pattern is the regular expression for "regex" rules
	Pattern string `yaml:"pattern,omitempty"`
	// Values is the allowed set for "list" rules
	Values []string `yaml:"values,omitempty"`
	// Sources names symbolic-value sources for "from_enums" rules
	Sources []string `yaml:"sources,omitempty"`
}

// GlobalConfig configures whole-name constraints
type GlobalConfig struct {
	// MaxLength is the maximum character length for a built name (0 = unlimited)
	MaxLength int `yaml:"max_length"`
	// Forbidden lists substrings that must not appear in any name
	Forbidden []string `yaml:"forbidden_patterns"`
}

// RiggingConfig configures rig-wide convention defaults
type RiggingConfig struct {
	// SideDefault is the side token used when none is given (e.g. "c")
	SideDefault string `yaml:"side_default"`
	// RotateOrderDefault is the default rotate order (e.g. "xyz")
	RotateOrderDefault string `yaml:"rotate_order_default"`
	// AxisAim is the default aim axis
	AxisAim string `yaml:"axis_aim"`
	// AxisUp is the default up axis
	AxisUp string `yaml:"axis_up"`
	// AxisSide is the default side axis
	AxisSide string `yaml:"axis_side"`
}

// DefaultConfig returns a Config with the standard three-token convention
func DefaultConfig() *Config {
	return &Config{
		Naming: NamingConfig{
			Separator: "_",
			Tokens:    []string{"descriptor", "side", "usage"},
			Rules: map[string]RuleConfig{
				"descriptor": {Type: "regex", Pattern: "^[a-z][a-zA-Z0-9]*$"},
				"side":       {Type: "from_enums", Sources: []string{symbols.SourceSide}},
				"usage":      {Type: "from_enums", Sources: []string{symbols.SourceUsage}},
			},
			Normalizers: map[string]string{
				"descriptor": "descriptor",
				"side":       "side",
			},
			Global: GlobalConfig{
				MaxLength: 80,
				Forbidden: []string{"__"},
			},
		},
		Rigging: RiggingConfig{
			SideDefault:        string(symbols.SideCenter),
			RotateOrderDefault: "xyz",
			AxisAim:            "X",
			AxisUp:             "Y",
			AxisSide:           "Z",
		},
	}
}

// Validate checks that the configuration is structurally valid: every
// token is named once, rules and normalizers only reference declared
// tokens and registered implementations, and each rule carries the payload
// its type requires.
func (c *Config) Validate() error {
	n := &c.Naming

	if n.Separator == "" {
		return fmt.Errorf("%w: naming.separator is required", ErrInvalidConfig)
	}
	if len(n.Tokens) == 0 {
		return fmt.Errorf("%w: naming.tokens must list at least one token", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(n.Tokens))
	for _, token := range n.Tokens {
		if token == "" {
			return fmt.Errorf("%w: naming.tokens contains an empty token name", ErrInvalidConfig)
		}
		if _, dup := seen[token]; dup {
			return fmt.Errorf("%w: duplicate token %q in naming.tokens", ErrInvalidConfig, token)
		}
		seen[token] = struct{}{}
	}

	for token, rc := range n.Rules {
		if _, ok := seen[token]; !ok {
			return fmt.Errorf("%w: naming.rules.%s references an undeclared token", ErrInvalidConfig, token)
		}
		if err := rc.validate(token); err != nil {
			return err
		}
	}

	for token, name := range n.Normalizers {
		if _, ok := seen[token]; !ok {
			return fmt.Errorf("%w: naming.normalizers.%s references an undeclared token", ErrInvalidConfig, token)
		}
		if _, ok := normalizer.Lookup(name); !ok {
			return fmt.Errorf("%w: naming.normalizers.%s names unknown normalizer %q (available: %v)",
				ErrInvalidConfig, token, name, normalizer.Names())
		}
	}

	if n.Global.MaxLength < 0 {
		return fmt.Errorf("%w: naming.global.max_length must not be negative", ErrInvalidConfig)
	}

	return nil
}

func (rc RuleConfig) validate(token string) error {
	switch rc.Type {
	case "regex":
		if rc.Pattern == "" {
			return fmt.Errorf("%w: naming.rules.%s: regex rule requires a pattern", ErrInvalidConfig, token)
		}
	case "list":
		if len(rc.Values) == 0 {
			return fmt.Errorf("%w: naming.rules.%s: list rule requires values", ErrInvalidConfig, token)
		}
	case "from_enums":
		if len(rc.Sources) == 0 {
			return fmt.Errorf("%w: naming.rules.%s: from_enums rule requires sources", ErrInvalidConfig, token)
		}
		for _, source := range rc.Sources {
			if _, ok := symbols.Lookup(source); !ok {
				return fmt.Errorf("%w: naming.rules.%s references unknown source %q (available: %v)",
					ErrInvalidConfig, token, source, symbols.Names())
			}
		}
	case "":
		return fmt.Errorf("%w: naming.rules.%s: rule type is required", ErrInvalidConfig, token)
	default:
		if _, ok := lookupRuleType(rc.Type); !ok {
			return fmt.Errorf("%w: naming.rules.%s has unknown rule type %q", ErrInvalidConfig, token, rc.Type)
		}
	}
	return nil
}

// applyDefaults fills absent sections from DefaultConfig. The naming
// section is all-or-nothing: only a completely absent section gets the
// default convention. A document that declares any part of it owns the
// whole convention and must spell out the required fields itself, so
// missing ones fail validation instead of being silently defaulted.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	n := &c.Naming
	if n.Separator == "" && len(n.Tokens) == 0 &&
		len(n.Rules) == 0 && len(n.Normalizers) == 0 &&
		n.Global.MaxLength == 0 && len(n.Global.Forbidden) == 0 {
		c.Naming = defaults.Naming
	}

	if c.Rigging.SideDefault == "" {
		c.Rigging.SideDefault = defaults.Rigging.SideDefault
	}
	if c.Rigging.RotateOrderDefault == "" {
		c.Rigging.RotateOrderDefault = defaults.Rigging.RotateOrderDefault
	}
	if c.Rigging.AxisAim == "" {
		c.Rigging.AxisAim = defaults.Rigging.AxisAim
	}
	if c.Rigging.AxisUp == "" {
		c.Rigging.AxisUp = defaults.Rigging.AxisUp
	}
	if c.Rigging.AxisSide == "" {
		c.Rigging.AxisSide = defaults.Rigging.AxisSide
	}
}

// Parse decodes a YAML document into a validated Config. Unknown keys are
// rejected so typos surface as errors instead of silently defaulting.
func Parse(data []byte) (*Config, error) {
	var config Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
