package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config holds configuration for a Codec
type Config struct {
	// Size limits
	MaxJSONSize     int64 `yaml:"max_json_size" json:"max_json_size"`
	MaxNestingDepth int   `yaml:"max_nesting_depth" json:"max_nesting_depth"`

	// Output
	EscapeHTML bool `yaml:"escape_html" json:"escape_html"`

	// Observability
	EnableMetrics    bool   `yaml:"enable_metrics" json:"enable_metrics"`
	MetricsNamespace string `yaml:"metrics_namespace" json:"metrics_namespace"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxJSONSize:      DefaultMaxJSONSize,
		MaxNestingDepth:  DefaultMaxNestingDepth,
		EscapeHTML:       false,
		EnableMetrics:    false,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// ValidateConfig validates configuration values and fills unset ones from
// DefaultConfig
func ValidateConfig(config *Config) error {
	if config == nil {
		return newValueError("validate_config", "", "config cannot be nil", ErrInvalidConfig)
	}

	if config.MaxJSONSize < 0 {
		return newValueError("validate_config", "", "MaxJSONSize cannot be negative", ErrInvalidConfig)
	}
	if config.MaxNestingDepth < 0 {
		return newValueError("validate_config", "", "MaxNestingDepth cannot be negative", ErrInvalidConfig)
	}

	if err := mergo.Merge(config, *DefaultConfig()); err != nil {
		return newValueError("validate_config", "", err.Error(), ErrInvalidConfig)
	}

	if config.MaxJSONSize > MaxAllowedJSONSize {
		return newValueError("validate_config", "",
			fmt.Sprintf("MaxJSONSize %d exceeds limit %d", config.MaxJSONSize, int64(MaxAllowedJSONSize)), ErrInvalidConfig)
	}
	if config.MaxNestingDepth > MaxAllowedNestingDepth {
		return newValueError("validate_config", "",
			fmt.Sprintf("MaxNestingDepth %d exceeds limit %d", config.MaxNestingDepth, MaxAllowedNestingDepth), ErrInvalidConfig)
	}

	return nil
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// HighSecurityConfig returns a configuration with tighter input limits
func HighSecurityConfig() *Config {
	config := DefaultConfig()
	config.MaxJSONSize = 1024 * 1024
	config.MaxNestingDepth = 20
	config.EscapeHTML = true
	return config
}

// LargeDataConfig returns a configuration for large documents
func LargeDataConfig() *Config {
	config := DefaultConfig()
	config.MaxJSONSize = MaxAllowedJSONSize
	config.MaxNestingDepth = 100
	return config
}

// ParseConfig decodes a YAML configuration. Unknown fields are rejected and
// unset fields take their defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, newValueError("parse_config", "", err.Error(), ErrInvalidConfig)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig reads a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newValueError("load_config", "", err.Error(), ErrInvalidConfig)
	}
	return ParseConfig(data)
}
