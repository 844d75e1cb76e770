package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/passkit/internal/observability"
	"github.com/jonathan/passkit/internal/schemas"
	"github.com/jonathan/passkit/internal/strength"
	"github.com/jonathan/passkit/internal/types"
	schemafiles "github.com/jonathan/passkit/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var checkCmd = &cobra.Command{
	Use:   "check [PASSWORD]",
	Short: "Check the strength of a password",
	Long: `Evaluates a password against five rules (length of at least 12, uppercase,
lowercase, digits, special characters) and reports a label, a percentage, a
checklist and recommendations for every failed rule.

The password is read from the argument, from standard input when the argument is
"-" or stdin is not a terminal, or from a hidden prompt otherwise. Passing the
password as an argument leaves it in shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var (
	checkJSON     bool
	checkEstimate bool
	checkRules    bool
	checkMinLabel string
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Write the report as JSON")
	checkCmd.Flags().BoolVar(&checkEstimate, "estimate", false, "Add a zxcvbn crack-time estimate to the report")
	checkCmd.Flags().BoolVar(&checkRules, "rules", false, "Print the rule table and exit")
	checkCmd.Flags().StringVar(&checkMinLabel, "min-label", "", "Fail unless the label is at least this strong (None, Weak, Medium, Good, Excellent)")

	rootCmd.AddCommand(checkCmd)
}

// terminalFd returns the descriptor of in when it is an interactive terminal.
var terminalFd = func(in io.Reader) (int, bool) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

// readHidden reads a line from the terminal without echo.
var readHidden = term.ReadPassword

// readPassword resolves the password to check from args, piped input or a hidden prompt.
// A terminal is always read without echo, including for "-".
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if fd, ok := terminalFd(in); ok {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := readHidden(fd)
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if checkRules {
		observability.NewPrinter(out).PrintRules(strength.Rules())
		return nil
	}

	minLabel := activeConfig.MinLabel
	if cmd.Flags().Changed("min-label") {
		minLabel = checkMinLabel
	}
	var threshold types.Label
	if minLabel != "" {
		var err error
		if threshold, err = types.ParseLabel(minLabel); err != nil {
			return err
		}
	}

	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}

	report := strength.Evaluate(password)
	if checkEstimate && password != "" {
		est := strength.Estimate(password)
		report.Estimate = &est
	}

	logger.Debug("evaluated password",
		zap.String("label", string(report.Label)),
		zap.Int("passed_checks", report.PassedChecks),
	)

	if checkJSON {
		// Validate output against schema (non-fatal)
		if err := schemas.ValidateDocument(schemafiles.StrengthReport, report); err != nil {
			logger.Warn("strength report does not match schema", zap.Error(err))
		}

		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	} else {
		observability.NewPrinter(out).PrintReport(&report)
	}

	if threshold != "" && !report.Label.AtLeast(threshold) {
		return fmt.Errorf("password strength %s is below the required %s", report.Label, threshold)
	}
	return nil
}
