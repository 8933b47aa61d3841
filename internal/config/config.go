// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for fixturemocks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the fixturemocks configuration.
type Config struct {
	// FixturesFolder is the fixtures root the mocks folder lives under
	FixturesFolder string `mapstructure:"fixturesFolder" yaml:"fixturesFolder" json:"fixturesFolder" validate:"required"`

	// MocksFolder is the default folder under FixturesFolder to scan
	MocksFolder string `mapstructure:"mocksFolder" yaml:"mocksFolder" json:"mocksFolder" validate:"required"`

	// APIPath is the default prefix for intercept URLs
	APIPath string `mapstructure:"apiPath" yaml:"apiPath" json:"apiPath" validate:"required,startswith=/"`

	// Cache enables reuse of a previous result for the same mocks folder
	Cache bool `mapstructure:"cache" yaml:"cache" json:"cache"`

	// ResponsePrefix is prepended to response tokens (e.g., "fx:")
	ResponsePrefix string `mapstructure:"responsePrefix" yaml:"responsePrefix" json:"responsePrefix"`

	// Exclude is a list of glob patterns, relative to the mocks folder, to skip
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`

	// Format is the descriptor output format (json, yaml)
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"omitempty,oneof=json yaml"`

	// Output is the output file path; empty writes to stdout
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce" validate:"gte=0"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"fixturemocks.yaml",
	"fixturemocks.json",
	".fixturemocks.yaml",
	".fixturemocks.json",
}

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "FIXTUREMOCKS"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		FixturesFolder: "cypress/fixtures",
		MocksFolder:    "mocks",
		APIPath:        "/api/",
		Cache:          true,
		Format:         "json",
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. fixturemocks.yaml
// 2. fixturemocks.json
// 3. .fixturemocks.yaml
// 4. .fixturemocks.json
//
// If configPath is provided, it will use that path instead. Environment
// variables prefixed with FIXTUREMOCKS_ override file values.
func Load(configPath string) (*Config, error) {
	v := newViper()

	if configPath == "" {
		configPath = ConfigFilePath()
	}
	if configPath == "" {
		return unmarshal(v)
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return unmarshal(v)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return unmarshal(newViper())
}

// newViper returns a viper instance with defaults and env bindings.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("fixturesFolder", d.FixturesFolder)
	v.SetDefault("mocksFolder", d.MocksFolder)
	v.SetDefault("apiPath", d.APIPath)
	v.SetDefault("cache", d.Cache)
	v.SetDefault("responsePrefix", d.ResponsePrefix)
	v.SetDefault("exclude", []string{})
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// validate is shared; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return val
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   fieldPath(fe.Namespace()),
				Message: describeFieldError(fe),
			})
		}
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, ValidationError{
				Field:   "exclude",
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the config file in the working
// directory, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// FileNames returns the config file names searched by Load.
func FileNames() []string {
	return append([]string(nil), configFileNames...)
}

// fieldPath drops the root struct name from a validator namespace
// ("Config.watch.debounce" becomes "watch.debounce").
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "oneof":
		return fmt.Sprintf("unsupported value %q, must be one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
