package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/passkit/internal/types"
)

// Environment variables read by FromEnv.
const (
	EnvLength    = "PASSKIT_LENGTH"
	EnvUppercase = "PASSKIT_UPPERCASE"
	EnvLowercase = "PASSKIT_LOWERCASE"
	EnvNumbers   = "PASSKIT_NUMBERS"
	EnvSymbols   = "PASSKIT_SYMBOLS"
	EnvCount     = "PASSKIT_COUNT"
	EnvMinLabel  = "PASSKIT_MIN_LABEL"
	EnvVerbose   = "PASSKIT_VERBOSE"
)

// FromEnv creates a configuration from PASSKIT_* environment variables.
// Unset variables leave the corresponding field unset. Values are parsed but not
// range-checked; call Validate on the merged configuration.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if v := os.Getenv(EnvLength); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid %s", EnvLength), Cause: err}
		}
		cfg.Length = n
	}

	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid %s", EnvCount), Cause: err}
		}
		cfg.Count = n
	}

	toggles := []struct {
		name string
		dst  **bool
	}{
		{EnvUppercase, &cfg.Uppercase},
		{EnvLowercase, &cfg.Lowercase},
		{EnvNumbers, &cfg.Numbers},
		{EnvSymbols, &cfg.Symbols},
	}
	for _, tg := range toggles {
		v := os.Getenv(tg.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid %s", tg.name), Cause: err}
		}
		*tg.dst = &b
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("invalid %s", EnvVerbose), Cause: err}
		}
		cfg.Verbose = b
	}

	if v := strings.TrimSpace(os.Getenv(EnvMinLabel)); v != "" {
		cfg.MinLabel = v
		if label, err := types.ParseLabel(v); err == nil {
			cfg.MinLabel = string(label)
		}
	}

	return cfg, nil
}
