package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/passkit/internal/config"
	"github.com/jonathan/passkit/internal/generator"
	"github.com/jonathan/passkit/internal/observability"
	"github.com/jonathan/passkit/internal/schemas"
	"github.com/jonathan/passkit/internal/strength"
	"github.com/jonathan/passkit/internal/types"
	schemafiles "github.com/jonathan/passkit/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random passwords",
	Long: `Generates passwords of the requested length (8-64) drawn uniformly from the selected
character classes using the operating system's cryptographically secure random source.

Every class is enabled by default; disable one with e.g. --symbols=false.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateLength    int
	generateUppercase bool
	generateLowercase bool
	generateNumbers   bool
	generateSymbols   bool
	generateCount     int
	generateJSON      bool
	generatePlain     bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", types.DefaultPasswordLength, "Password length (8-64)")
	generateCmd.Flags().BoolVarP(&generateUppercase, "uppercase", "u", true, "Include uppercase letters (A-Z)")
	generateCmd.Flags().BoolVarP(&generateLowercase, "lowercase", "w", true, "Include lowercase letters (a-z)")
	generateCmd.Flags().BoolVarP(&generateNumbers, "numbers", "n", true, "Include digits (0-9)")
	generateCmd.Flags().BoolVarP(&generateSymbols, "symbols", "s", true, "Include symbols (!@#$%^&*()_+-=[]{}|;:,.<>?)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Write a JSON document instead of the formatted box")
	generateCmd.Flags().BoolVar(&generatePlain, "plain", false, "Write one password per line with no decoration")

	generateCmd.MarkFlagsMutuallyExclusive("json", "plain")

	rootCmd.AddCommand(generateCmd)
}

// generationConfig applies explicitly set flags over the active config.
func generationConfig(cmd *cobra.Command) config.Config {
	cfg := activeConfig
	cfg.MinLabel = "" // only used by check

	if cmd.Flags().Changed("length") {
		cfg.Length = generateLength
	}
	if cmd.Flags().Changed("uppercase") {
		cfg.Uppercase = &generateUppercase
	}
	if cmd.Flags().Changed("lowercase") {
		cfg.Lowercase = &generateLowercase
	}
	if cmd.Flags().Changed("numbers") {
		cfg.Numbers = &generateNumbers
	}
	if cmd.Flags().Changed("symbols") {
		cfg.Symbols = &generateSymbols
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = generateCount
	}
	return cfg
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := generationConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := cfg.GenerationOptions()
	if cmd.Flags().Changed("length") {
		opts.Length = generateLength
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid length %d: must be between %d and %d", opts.Length, types.MinPasswordLength, types.MaxPasswordLength)
	}

	count := cfg.BatchCount()
	if cmd.Flags().Changed("count") && generateCount < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", generateCount)
	}

	logger.Debug("generating passwords",
		zap.Int("length", opts.Length),
		zap.Int("count", count),
		zap.Int("alphabet_size", generator.AlphabetSize(opts)),
	)

	passwords, err := generator.New().GenerateBatch(cmd.Context(), opts, count)
	if err != nil {
		if errors.Is(err, generator.ErrNoCharacterClassSelected) {
			return fmt.Errorf("no character class selected: enable at least one of --uppercase, --lowercase, --numbers, --symbols")
		}
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	result := types.GenerateResult{
		Options:      opts,
		AlphabetSize: generator.AlphabetSize(opts),
		EntropyBits:  generator.EntropyBits(opts),
		Passwords:    make([]types.GeneratedPassword, 0, len(passwords)),
	}
	for _, pw := range passwords {
		result.Passwords = append(result.Passwords, types.GeneratedPassword{
			Password: pw,
			Length:   len(pw),
			Meter:    strength.Meter(pw),
		})
	}

	out := cmd.OutOrStdout()
	switch {
	case generateJSON:
		// Validate output against schema (non-fatal)
		if err := schemas.ValidateDocument(schemafiles.GenerateResult, result); err != nil {
			logger.Warn("generated document does not match schema", zap.Error(err))
		}

		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	case generatePlain:
		for _, pw := range passwords {
			_, _ = fmt.Fprintln(out, pw)
		}
	default:
		observability.NewPrinter(out).PrintGenerated(&result)
	}

	logger.Debug("generated passwords", zap.Int("count", len(passwords)), zap.Float64("entropy_bits", result.EntropyBits))
	return nil
}
