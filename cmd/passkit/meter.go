package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/passkit/internal/observability"
	"github.com/jonathan/passkit/internal/strength"
	"github.com/spf13/cobra"
)

var meterCmd = &cobra.Command{
	Use:   "meter [PASSWORD]",
	Short: "Show the three-level meter reading for a password",
	Long: `Scores a password on the six-point meter used for generated passwords
(length of at least 12, length of at least 16, lowercase, uppercase, digits, symbols)
and maps it to Weak (33%), Medium (66%) or Strong (100%).

This is a different, coarser scale than "check" and the two can disagree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMeter,
}

var meterJSON bool

func init() {
	meterCmd.Flags().BoolVar(&meterJSON, "json", false, "Write the reading as JSON")

	rootCmd.AddCommand(meterCmd)
}

func runMeter(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}

	reading := strength.Meter(password)

	if meterJSON {
		jsonBytes, err := json.MarshalIndent(reading, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reading to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintMeter(reading)
	return nil
}
