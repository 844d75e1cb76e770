package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jonathan/passkit/internal/config"
	"github.com/jonathan/passkit/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default so commands can be executed repeatedly in-process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// clearEnv blanks every PASSKIT_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvLength, config.EnvUppercase, config.EnvLowercase, config.EnvNumbers,
		config.EnvSymbols, config.EnvCount, config.EnvMinLabel, config.EnvVerbose,
		logging.EnvLogLevel,
	} {
		t.Setenv(name, "")
	}
}

// executeCommand runs the root command with args and stdin, returning stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
