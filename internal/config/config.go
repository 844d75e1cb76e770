// Package config provides configuration loading and validation for the passkit CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/passkit/internal/types"
)

// Config represents generation defaults that can be loaded from a JSON file or the environment.
// All fields are optional; missing values fall back to built-in defaults. Class toggles are
// pointers so that an explicit false can be told apart from an absent key.
type Config struct {
	// Generation
	Length    int   `json:"length,omitempty" validate:"omitempty,min=8,max=64"`  // Password length
	Uppercase *bool `json:"uppercase,omitempty"`                                 // Include A-Z
	Lowercase *bool `json:"lowercase,omitempty"`                                 // Include a-z
	Numbers   *bool `json:"numbers,omitempty"`                                   // Include 0-9
	Symbols   *bool `json:"symbols,omitempty"`                                   // Include the symbol set
	Count     int   `json:"count,omitempty" validate:"omitempty,min=1,max=1000"` // Passwords per generate call

	// Checking
	MinLabel string `json:"min_label,omitempty"` // Threshold for check --min-label, any letter case

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Enable debug logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// An empty class selection is not rejected here; the generator reports it.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &Error{
				Message: fmt.Sprintf("'%s' failed the '%s' rule (value: %v)", fe.Field(), fe.Tag(), fe.Value()),
				Cause:   err,
			}
		}
		return &Error{Message: "invalid configuration", Cause: err}
	}

	if c.MinLabel != "" {
		if _, err := types.ParseLabel(c.MinLabel); err != nil {
			return &Error{Message: fmt.Sprintf("'min_label' is not a strength label (value: %s)", c.MinLabel), Cause: err}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to layer the config file over the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Int fields: use default if zero
	if result.Length == 0 {
		result.Length = defaults.Length
	}
	if result.Count == 0 {
		result.Count = defaults.Count
	}

	// Bool pointers: use default if unset
	if result.Uppercase == nil {
		result.Uppercase = defaults.Uppercase
	}
	if result.Lowercase == nil {
		result.Lowercase = defaults.Lowercase
	}
	if result.Numbers == nil {
		result.Numbers = defaults.Numbers
	}
	if result.Symbols == nil {
		result.Symbols = defaults.Symbols
	}

	if result.MinLabel == "" {
		result.MinLabel = defaults.MinLabel
	}

	// Plain bools cannot distinguish unset from false
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// GenerationOptions applies the configuration on top of types.DefaultGenerationOptions.
func (c *Config) GenerationOptions() types.GenerationOptions {
	opts := types.DefaultGenerationOptions()
	if c.Length != 0 {
		opts.Length = c.Length
	}
	if c.Uppercase != nil {
		opts.Uppercase = *c.Uppercase
	}
	if c.Lowercase != nil {
		opts.Lowercase = *c.Lowercase
	}
	if c.Numbers != nil {
		opts.Numbers = *c.Numbers
	}
	if c.Symbols != nil {
		opts.Symbols = *c.Symbols
	}
	return opts
}

// BatchCount returns the configured password count, defaulting to 1.
func (c *Config) BatchCount() int {
	if c.Count < 1 {
		return 1
	}
	return c.Count
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
