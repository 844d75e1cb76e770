// Package types provides type definitions for structured data shared by the passkit engines and CLI.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Length bounds for generated passwords.
const (
	MinPasswordLength     = 8
	MaxPasswordLength     = 64
	DefaultPasswordLength = 16
)

// GenerationOptions selects the length and character classes of a generated password.
type GenerationOptions struct {
	Length    int  `json:"length" validate:"min=8,max=64"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// DefaultGenerationOptions returns 16-character options with every class enabled.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		Length:    DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// AnyClass reports whether at least one character class is enabled.
func (o GenerationOptions) AnyClass() bool {
	return o.Uppercase || o.Lowercase || o.Numbers || o.Symbols
}

// Validate validates the GenerationOptions using the validator.
// It checks the length range only; an empty class selection is reported by the generator.
func (o *GenerationOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// GeneratedPassword is a single generator result as emitted by the CLI in JSON mode.
type GeneratedPassword struct {
	Password string       `json:"password"`
	Length   int          `json:"length"`
	Meter    MeterReading `json:"meter"`
}

// GenerateResult is the JSON document written by `passkit generate --json`.
type GenerateResult struct {
	Options      GenerationOptions   `json:"options"`
	AlphabetSize int                 `json:"alphabet_size"`
	EntropyBits  float64             `json:"entropy_bits"`
	Passwords    []GeneratedPassword `json:"passwords"`
}
